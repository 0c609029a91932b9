package services

import (
	"jobmatch_backend/internal/algorithms"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const matchRunHistoryLimit = 50

type MatchingService interface {
	// FindMatchingWorkers ранжирует всех исполнителей под работу и возвращает лучших
	FindMatchingWorkers(db *gorm.DB, jobID, requestedBy string) ([]*dto.MatchedWorker, error)
	// ListMatchRuns - журнал запусков подбора по своей работе, новые первыми
	ListMatchRuns(db *gorm.DB, jobID, employerID string) ([]*dto.MatchRunResponse, error)
}

type matchingService struct {
	jobRepo      repositories.JobRepository
	workerRepo   repositories.WorkerRepository
	matchRunRepo repositories.MatchRunRepository
}

func NewMatchingService(
	jobRepo repositories.JobRepository,
	workerRepo repositories.WorkerRepository,
	matchRunRepo repositories.MatchRunRepository,
) MatchingService {
	return &matchingService{
		jobRepo:      jobRepo,
		workerRepo:   workerRepo,
		matchRunRepo: matchRunRepo,
	}
}

func (s *matchingService) FindMatchingWorkers(db *gorm.DB, jobID, requestedBy string) ([]*dto.MatchedWorker, error) {
	if jobID == "" {
		return nil, apperrors.ErrJobIDRequired
	}

	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}

	workers, err := s.workerRepo.FindAllWorkersWithProfileAndReviews(db)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	jobDesc := toJobDescriptor(job)
	pool := make([]algorithms.WorkerDescriptor, 0, len(workers))
	for i := range workers {
		pool = append(pool, toWorkerDescriptor(&workers[i]))
	}

	ranked := algorithms.Rank(jobDesc, pool)

	s.recordMatchRun(db, job.ID, requestedBy, len(pool), ranked)

	matches := make([]*dto.MatchedWorker, 0, len(ranked))
	for _, r := range ranked {
		matches = append(matches, toMatchedWorker(jobDesc, r))
	}
	return matches, nil
}

func (s *matchingService) ListMatchRuns(db *gorm.DB, jobID, employerID string) ([]*dto.MatchRunResponse, error) {
	if jobID == "" {
		return nil, apperrors.ErrJobIDRequired
	}

	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	runs, err := s.matchRunRepo.FindMatchRunsByJob(db, jobID, matchRunHistoryLimit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	out := make([]*dto.MatchRunResponse, 0, len(runs))
	for i := range runs {
		out = append(out, toMatchRunResponse(&runs[i]))
	}
	return out, nil
}

// recordMatchRun пишет журнал; ошибка записи не влияет на ответ
func (s *matchingService) recordMatchRun(db *gorm.DB, jobID, requestedBy string, poolSize int, ranked []algorithms.MatchResult) {
	entries := make([]models.MatchRunEntry, 0, len(ranked))
	for _, r := range ranked {
		entries = append(entries, models.MatchRunEntry{WorkerID: r.ID, MatchScore: r.MatchScore})
	}

	run := &models.MatchRun{
		JobID:       jobID,
		RequestedBy: requestedBy,
		PoolSize:    poolSize,
		Results:     entries,
	}
	if err := s.matchRunRepo.CreateMatchRun(db, run); err != nil {
		logger.Warn("Failed to record match run", "job_id", jobID, "error", err)
	}
}

// --- Mappers ---

func toJobDescriptor(job *models.Job) algorithms.JobDescriptor {
	return algorithms.JobDescriptor{
		ID:       job.ID,
		Skills:   job.GetSkills(),
		Location: job.Location,
	}
}

func toWorkerDescriptor(w *models.Worker) algorithms.WorkerDescriptor {
	return algorithms.WorkerDescriptor{
		ID:            w.ID,
		UserID:        w.UserID,
		Skills:        w.GetSkills(),
		Location:      w.Location,
		Experience:    w.Experience,
		Ratings:       w.Ratings(),
		Contact:       w.Contact,
		ProfilePicURL: w.ProfilePicURL,
		FullName:      w.FullName(),
	}
}

func toMatchedWorker(job algorithms.JobDescriptor, r algorithms.MatchResult) *dto.MatchedWorker {
	skills := r.Skills
	if skills == nil {
		skills = []string{}
	}
	return &dto.MatchedWorker{
		ID:            r.ID,
		UserID:        r.UserID,
		Skills:        skills,
		Experience:    r.Experience,
		Location:      r.Location,
		Contact:       r.Contact,
		ProfilePicURL: r.ProfilePicURL,
		Profiles:      dto.ProfileName{FullName: r.FullName},
		Reviews:       toReviewRatings(r.Ratings),
		MatchScore:    r.MatchScore,
		Breakdown:     algorithms.Breakdown(job, r.WorkerDescriptor),
	}
}

func toReviewRatings(ratings []int) []dto.ReviewRating {
	out := make([]dto.ReviewRating, 0, len(ratings))
	for _, r := range ratings {
		out = append(out, dto.ReviewRating{Rating: r})
	}
	return out
}

func toMatchRunResponse(run *models.MatchRun) *dto.MatchRunResponse {
	results := make([]dto.MatchRunEntry, 0, len(run.Results))
	for _, e := range run.Results {
		results = append(results, dto.MatchRunEntry{WorkerID: e.WorkerID, MatchScore: e.MatchScore})
	}
	return &dto.MatchRunResponse{
		ID:          run.ID,
		JobID:       run.JobID,
		RequestedBy: run.RequestedBy,
		PoolSize:    run.PoolSize,
		Results:     results,
		CreatedAt:   run.CreatedAt,
	}
}
