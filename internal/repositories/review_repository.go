package repositories

import (
	"errors"

	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewAlreadyExists = errors.New("review already exists for this job")
	ErrInvalidReviewRating = errors.New("rating must be between 1 and 5")
)

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	FindReviewsByWorker(db *gorm.DB, workerID string) ([]models.Review, error)
	ExistsForJob(db *gorm.DB, jobID, workerID, employerID string) (bool, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReviewRating
	}

	exists, err := r.ExistsForJob(db, review.JobID, review.WorkerID, review.EmployerID)
	if err != nil {
		return err
	}
	if exists {
		return ErrReviewAlreadyExists
	}

	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindReviewsByWorker(db *gorm.DB, workerID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("worker_id = ?", workerID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) ExistsForJob(db *gorm.DB, jobID, workerID, employerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Review{}).
		Where("job_id = ? AND worker_id = ? AND employer_id = ?", jobID, workerID, employerID).
		Count(&count).Error
	return count > 0, err
}
