package services

import (
	"time"

	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error)
	GetEmployerJobs(db *gorm.DB, employerID string, status models.JobStatus) (*dto.JobListResponse, error)

	// CloseExpiredJobs закрывает открытые работы, срок которых прошел к моменту now
	CloseExpiredJobs(db *gorm.DB, now time.Time) (int64, error)
}

type jobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) CreateJob(db *gorm.DB, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		EmployerID:   employerID,
		Title:        req.Title,
		Description:  req.Description,
		Budget:       req.Budget,
		DeadlineDays: req.DeadlineDays,
		Location:     req.Location,
		Status:       models.JobStatusPending,
	}
	job.SetSkills(req.NormalizedSkills())

	if err := s.jobRepo.CreateJob(db, job); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toJobResponse(job), nil
}

func (s *jobService) GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	return toJobResponse(job), nil
}

func (s *jobService) GetEmployerJobs(db *gorm.DB, employerID string, status models.JobStatus) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.FindJobsByEmployer(db, employerID, status)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	resp := &dto.JobListResponse{Jobs: make([]*dto.JobResponse, 0, len(jobs)), Total: len(jobs)}
	for i := range jobs {
		resp.Jobs = append(resp.Jobs, toJobResponse(&jobs[i]))
	}
	return resp, nil
}

func (s *jobService) CloseExpiredJobs(db *gorm.DB, now time.Time) (int64, error) {
	jobs, err := s.jobRepo.FindOpenJobs(db)
	if err != nil {
		return 0, err
	}

	var expired []string
	for i := range jobs {
		if jobs[i].IsExpired(now) {
			expired = append(expired, jobs[i].ID)
		}
	}

	return s.jobRepo.CloseJobs(db, expired)
}

func toJobResponse(job *models.Job) *dto.JobResponse {
	skills := job.GetSkills()
	if skills == nil {
		skills = []string{}
	}
	return &dto.JobResponse{
		ID:               job.ID,
		EmployerID:       job.EmployerID,
		Title:            job.Title,
		Description:      job.Description,
		Budget:           job.Budget,
		DeadlineDays:     job.DeadlineDays,
		Location:         job.Location,
		SkillsRequired:   skills,
		Status:           string(job.Status),
		AcceptedWorkerID: job.AcceptedWorkerID,
		CreatedAt:        job.CreatedAt,
	}
}
