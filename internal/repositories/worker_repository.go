package repositories

import (
	"errors"

	"jobmatch_backend/internal/database"
	"jobmatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWorkerNotFound      = errors.New("worker not found")
	ErrWorkerAlreadyExists = errors.New("worker profile already exists for this user")
)

type WorkerRepository interface {
	CreateWorker(db *gorm.DB, worker *models.Worker) error
	FindWorkerByID(db *gorm.DB, id string) (*models.Worker, error)
	FindWorkerByUserID(db *gorm.DB, userID string) (*models.Worker, error)

	// Пул кандидатов для подбора: профиль (имя) и оценки из отзывов
	FindAllWorkersWithProfileAndReviews(db *gorm.DB) ([]models.Worker, error)
}

type WorkerRepositoryImpl struct{}

func NewWorkerRepository() WorkerRepository {
	return &WorkerRepositoryImpl{}
}

func (r *WorkerRepositoryImpl) CreateWorker(db *gorm.DB, worker *models.Worker) error {
	if err := db.Omit("Profile", "Reviews").Create(worker).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrWorkerAlreadyExists
		}
		return err
	}
	return nil
}

func (r *WorkerRepositoryImpl) FindWorkerByID(db *gorm.DB, id string) (*models.Worker, error) {
	var worker models.Worker
	err := db.Preload("Profile").Preload("Reviews").
		First(&worker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepositoryImpl) FindWorkerByUserID(db *gorm.DB, userID string) (*models.Worker, error) {
	var worker models.Worker
	err := db.Preload("Profile").
		First(&worker, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepositoryImpl) FindAllWorkersWithProfileAndReviews(db *gorm.DB) ([]models.Worker, error) {
	var workers []models.Worker
	err := db.Preload("Profile").
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "worker_id", "rating")
		}).
		Order("created_at ASC").
		Order("id ASC").
		Find(&workers).Error
	return workers, err
}
