package services

import (
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	// CreateReview - отзыв работодателя об исполнителе, которому он предлагал свою работу
	CreateReview(db *gorm.DB, employerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetWorkerReviews(db *gorm.DB, workerID string) (*dto.ReviewListResponse, error)
}

type reviewService struct {
	reviewRepo      repositories.ReviewRepository
	jobRepo         repositories.JobRepository
	workerRepo      repositories.WorkerRepository
	applicationRepo repositories.ApplicationRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	jobRepo repositories.JobRepository,
	workerRepo repositories.WorkerRepository,
	applicationRepo repositories.ApplicationRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:      reviewRepo,
		jobRepo:         jobRepo,
		workerRepo:      workerRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *reviewService) CreateReview(db *gorm.DB, employerID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	job, err := s.jobRepo.FindJobByID(db, req.JobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	if _, err := s.workerRepo.FindWorkerByID(db, req.WorkerID); err != nil {
		return nil, handleWorkerError(err)
	}

	offered, err := s.applicationRepo.HasApplication(db, job.ID, req.WorkerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if !offered {
		return nil, apperrors.ErrReviewNotAllowed
	}

	review := &models.Review{
		WorkerID:   req.WorkerID,
		EmployerID: employerID,
		JobID:      job.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.CreateReview(db, review); err != nil {
		return nil, handleReviewError(err)
	}
	return toReviewResponse(review), nil
}

func (s *reviewService) GetWorkerReviews(db *gorm.DB, workerID string) (*dto.ReviewListResponse, error) {
	if _, err := s.workerRepo.FindWorkerByID(db, workerID); err != nil {
		return nil, handleWorkerError(err)
	}

	reviews, err := s.reviewRepo.FindReviewsByWorker(db, workerID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.ReviewListResponse{Reviews: make([]*dto.ReviewResponse, 0, len(reviews)), Total: len(reviews)}
	ratings := make([]int, 0, len(reviews))
	for i := range reviews {
		resp.Reviews = append(resp.Reviews, toReviewResponse(&reviews[i]))
		ratings = append(ratings, reviews[i].Rating)
	}
	resp.AverageRating = averageRating(ratings)
	return resp, nil
}

func toReviewResponse(r *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         r.ID,
		WorkerID:   r.WorkerID,
		EmployerID: r.EmployerID,
		JobID:      r.JobID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
