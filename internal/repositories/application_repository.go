package repositories

import (
	"errors"

	"jobmatch_backend/internal/database"
	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound      = errors.New("application not found")
	ErrApplicationAlreadyExists = errors.New("application already exists for this job and worker")
)

type ApplicationRepository interface {
	CreateApplication(db *gorm.DB, app *models.Application) error
	FindApplicationByID(db *gorm.DB, id string) (*models.Application, error)
	FindApplicationsByWorker(db *gorm.DB, workerID string) ([]models.Application, error)
	FindApplicationsByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	HasApplication(db *gorm.DB, jobID, workerID string) (bool, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// CreateApplication - повторное предложение той же работы тому же исполнителю
// отсекается уникальным индексом (job_id, worker_id).
func (r *ApplicationRepositoryImpl) CreateApplication(db *gorm.DB, app *models.Application) error {
	if app.Status == "" {
		app.Status = models.ApplicationStatusPending
	}
	if err := db.Omit("Job", "Worker").Create(app).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrApplicationAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindApplicationByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").Preload("Worker").
		First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindApplicationsByWorker(db *gorm.DB, workerID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Job").
		Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindApplicationsByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Preload("Worker.Profile").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) HasApplication(db *gorm.DB, jobID, workerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND worker_id = ?", jobID, workerID).
		Count(&count).Error
	return count > 0, err
}
