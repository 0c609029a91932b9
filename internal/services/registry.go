package services

import (
	"jobmatch_backend/internal/email"
	"jobmatch_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	MatchingService     MatchingService
	JobService          JobService
	WorkerService       WorkerService
	ReviewService       ReviewService
	ApplicationService  ApplicationService
	NotificationService NotificationService
}

// NewServiceContainer собирает репозитории и сервисы
func NewServiceContainer(emailProvider email.Provider) *ServiceContainer {
	jobRepo := repositories.NewJobRepository()
	workerRepo := repositories.NewWorkerRepository()
	profileRepo := repositories.NewProfileRepository()
	reviewRepo := repositories.NewReviewRepository()
	applicationRepo := repositories.NewApplicationRepository()
	matchRunRepo := repositories.NewMatchRunRepository()

	notificationService := NewNotificationService(emailProvider)

	return &ServiceContainer{
		MatchingService:     NewMatchingService(jobRepo, workerRepo, matchRunRepo),
		JobService:          NewJobService(jobRepo),
		WorkerService:       NewWorkerService(workerRepo, profileRepo),
		ReviewService:       NewReviewService(reviewRepo, jobRepo, workerRepo, applicationRepo),
		ApplicationService:  NewApplicationService(applicationRepo, jobRepo, workerRepo, notificationService),
		NotificationService: notificationService,
	}
}
