package repositories

import (
	"errors"
	"time"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	CreateJob(db *gorm.DB, job *models.Job) error
	FindJobByID(db *gorm.DB, id string) (*models.Job, error)
	FindJobsByEmployer(db *gorm.DB, employerID string, status models.JobStatus) ([]models.Job, error)
	UpdateJobStatus(db *gorm.DB, id string, status models.JobStatus) error
	AcceptJob(db *gorm.DB, id, workerID string) error

	// Expiry
	FindOpenJobs(db *gorm.DB) ([]models.Job, error)
	CloseJobs(db *gorm.DB, ids []string) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) CreateJob(db *gorm.DB, job *models.Job) error {
	if job.Status == "" {
		job.Status = models.JobStatusPending
	}
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindJobByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FindJobsByEmployer - работы работодателя, пустой status означает любой
func (r *JobRepositoryImpl) FindJobsByEmployer(db *gorm.DB, employerID string, status models.JobStatus) ([]models.Job, error) {
	var jobs []models.Job
	query := db.Where("employer_id = ?", employerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateJobStatus(db *gorm.DB, id string, status models.JobStatus) error {
	result := db.Model(&models.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) AcceptJob(db *gorm.DB, id, workerID string) error {
	result := db.Model(&models.Job{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":             models.JobStatusAccepted,
			"accepted_worker_id": workerID,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// FindOpenJobs - работы, которые еще может закрыть истечение срока
func (r *JobRepositoryImpl) FindOpenJobs(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("status IN ?", []models.JobStatus{models.JobStatusPending, models.JobStatusAssigned}).
		Order("created_at ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CloseJobs(db *gorm.DB, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := db.Model(&models.Job{}).
		Where("id IN ?", ids).
		Where("status IN ?", []models.JobStatus{models.JobStatusPending, models.JobStatusAssigned}).
		Updates(map[string]interface{}{
			"status":     models.JobStatusClosed,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
