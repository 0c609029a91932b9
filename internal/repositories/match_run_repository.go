package repositories

import (
	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

type MatchRunRepository interface {
	CreateMatchRun(db *gorm.DB, run *models.MatchRun) error
	FindMatchRunsByJob(db *gorm.DB, jobID string, limit int) ([]models.MatchRun, error)
}

type MatchRunRepositoryImpl struct{}

func NewMatchRunRepository() MatchRunRepository {
	return &MatchRunRepositoryImpl{}
}

func (r *MatchRunRepositoryImpl) CreateMatchRun(db *gorm.DB, run *models.MatchRun) error {
	return db.Create(run).Error
}

func (r *MatchRunRepositoryImpl) FindMatchRunsByJob(db *gorm.DB, jobID string, limit int) ([]models.MatchRun, error) {
	var runs []models.MatchRun
	query := db.Where("job_id = ?", jobID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&runs).Error
	return runs, err
}
