package services

import (
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services/dto"
	"jobmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	// AssignWorker предлагает работу исполнителю: заявка pending, работа assigned
	AssignWorker(db *gorm.DB, employerID, jobID, workerID string) (*dto.ApplicationResponse, error)
	// RespondToApplication - исполнитель принимает или отклоняет предложение
	RespondToApplication(db *gorm.DB, userID, applicationID, decision string) (*dto.ApplicationResponse, error)

	GetWorkerApplications(db *gorm.DB, userID string) (*dto.ApplicationListResponse, error)
	GetJobApplications(db *gorm.DB, employerID, jobID string) (*dto.ApplicationListResponse, error)
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	workerRepo      repositories.WorkerRepository
	notifications   NotificationService
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	workerRepo repositories.WorkerRepository,
	notifications NotificationService,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		workerRepo:      workerRepo,
		notifications:   notifications,
	}
}

func (s *applicationService) AssignWorker(db *gorm.DB, employerID, jobID, workerID string) (*dto.ApplicationResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	job, err := s.jobRepo.FindJobByID(tx, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}
	if job.Status == models.JobStatusAccepted || job.Status == models.JobStatusClosed {
		return nil, apperrors.ErrInvalidJobStatus
	}

	worker, err := s.workerRepo.FindWorkerByID(tx, workerID)
	if err != nil {
		return nil, handleWorkerError(err)
	}

	app := &models.Application{
		JobID:    job.ID,
		WorkerID: worker.ID,
		Status:   models.ApplicationStatusPending,
	}
	if err := s.applicationRepo.CreateApplication(tx, app); err != nil {
		return nil, handleApplicationError(err)
	}

	if err := s.jobRepo.UpdateJobStatus(tx, job.ID, models.JobStatusAssigned); err != nil {
		return nil, handleJobError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	job.Status = models.JobStatusAssigned
	go func() {
		if err := s.notifications.NotifyWorkerAssigned(worker, job); err != nil {
			logger.Warn("Job offer notification failed", "application_id", app.ID, "error", err)
		}
	}()

	return toApplicationResponse(app), nil
}

func (s *applicationService) RespondToApplication(db *gorm.DB, userID, applicationID, decision string) (*dto.ApplicationResponse, error) {
	status := models.ApplicationStatus(decision)
	if !status.IsDecision() {
		return nil, apperrors.ErrInvalidOperation("application", "Status must be accepted or declined")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	worker, err := s.workerRepo.FindWorkerByUserID(tx, userID)
	if err != nil {
		return nil, handleWorkerError(err)
	}

	app, err := s.applicationRepo.FindApplicationByID(tx, applicationID)
	if err != nil {
		return nil, handleApplicationError(err)
	}
	if app.WorkerID != worker.ID {
		return nil, apperrors.ErrNotApplicationOwner
	}
	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationNotPending
	}

	if err := s.applicationRepo.UpdateApplicationStatus(tx, app.ID, status); err != nil {
		return nil, handleApplicationError(err)
	}

	if status == models.ApplicationStatusAccepted {
		err = s.jobRepo.AcceptJob(tx, app.JobID, worker.ID)
	} else {
		err = s.jobRepo.UpdateJobStatus(tx, app.JobID, models.JobStatusDeclined)
	}
	if err != nil {
		return nil, handleJobError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	app.Status = status
	return toApplicationResponse(app), nil
}

func (s *applicationService) GetWorkerApplications(db *gorm.DB, userID string) (*dto.ApplicationListResponse, error) {
	worker, err := s.workerRepo.FindWorkerByUserID(db, userID)
	if err != nil {
		return nil, handleWorkerError(err)
	}

	apps, err := s.applicationRepo.FindApplicationsByWorker(db, worker.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toApplicationList(apps), nil
}

func (s *applicationService) GetJobApplications(db *gorm.DB, employerID, jobID string) (*dto.ApplicationListResponse, error) {
	job, err := s.jobRepo.FindJobByID(db, jobID)
	if err != nil {
		return nil, handleJobError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwner
	}

	apps, err := s.applicationRepo.FindApplicationsByJob(db, job.ID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return toApplicationList(apps), nil
}

func toApplicationList(apps []models.Application) *dto.ApplicationListResponse {
	resp := &dto.ApplicationListResponse{
		Applications: make([]*dto.ApplicationResponse, 0, len(apps)),
		Total:        len(apps),
	}
	for i := range apps {
		resp.Applications = append(resp.Applications, toApplicationResponse(&apps[i]))
	}
	return resp
}

func toApplicationResponse(app *models.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		WorkerID:  app.WorkerID,
		Status:    string(app.Status),
		CreatedAt: app.CreatedAt,
	}
	if app.Job != nil {
		resp.Job = toJobResponse(app.Job)
	}
	if app.Worker != nil {
		resp.WorkerName = app.Worker.FullName()
	}
	return resp
}
