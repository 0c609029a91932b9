package services

import (
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type WorkerService interface {
	RegisterWorker(db *gorm.DB, userID string, req *dto.RegisterWorkerRequest) (*dto.WorkerResponse, error)
	GetWorker(db *gorm.DB, workerID string) (*dto.WorkerResponse, error)
	ListWorkers(db *gorm.DB) (*dto.WorkerListResponse, error)
}

type workerService struct {
	workerRepo  repositories.WorkerRepository
	profileRepo repositories.ProfileRepository
}

func NewWorkerService(
	workerRepo repositories.WorkerRepository,
	profileRepo repositories.ProfileRepository,
) WorkerService {
	return &workerService{
		workerRepo:  workerRepo,
		profileRepo: profileRepo,
	}
}

// RegisterWorker создает анкету исполнителя; у пользователя может быть только одна
func (s *workerService) RegisterWorker(db *gorm.DB, userID string, req *dto.RegisterWorkerRequest) (*dto.WorkerResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	profile := &models.Profile{
		ID:       userID,
		FullName: req.FullName,
		UserType: models.UserTypeWorker,
	}
	if err := s.profileRepo.UpsertProfile(tx, profile); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	worker := &models.Worker{
		UserID:        userID,
		Experience:    req.Experience,
		Location:      req.Location,
		Contact:       req.Contact,
		ProfilePicURL: req.ProfilePicURL,
	}
	worker.SetSkills(dto.SplitSkills(req.Skills))

	if err := s.workerRepo.CreateWorker(tx, worker); err != nil {
		return nil, handleWorkerError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	worker.Profile = profile
	return toWorkerResponse(worker), nil
}

func (s *workerService) GetWorker(db *gorm.DB, workerID string) (*dto.WorkerResponse, error) {
	worker, err := s.workerRepo.FindWorkerByID(db, workerID)
	if err != nil {
		return nil, handleWorkerError(err)
	}
	return toWorkerResponse(worker), nil
}

func (s *workerService) ListWorkers(db *gorm.DB) (*dto.WorkerListResponse, error) {
	workers, err := s.workerRepo.FindAllWorkersWithProfileAndReviews(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.WorkerListResponse{Workers: make([]*dto.WorkerResponse, 0, len(workers)), Total: len(workers)}
	for i := range workers {
		resp.Workers = append(resp.Workers, toWorkerResponse(&workers[i]))
	}
	return resp, nil
}

func toWorkerResponse(w *models.Worker) *dto.WorkerResponse {
	skills := w.GetSkills()
	if skills == nil {
		skills = []string{}
	}
	ratings := w.Ratings()
	return &dto.WorkerResponse{
		ID:            w.ID,
		UserID:        w.UserID,
		Skills:        skills,
		Experience:    w.Experience,
		Location:      w.Location,
		Contact:       w.Contact,
		ProfilePicURL: w.ProfilePicURL,
		Profiles:      dto.ProfileName{FullName: w.FullName()},
		Reviews:       toReviewRatings(ratings),
		AverageRating: averageRating(ratings),
		CreatedAt:     w.CreatedAt,
	}
}

func averageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
