package handlers

import (
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	MatchingHandler    *MatchingHandler
	JobHandler         *JobHandler
	WorkerHandler      *WorkerHandler
	ApplicationHandler *ApplicationHandler
	ReviewHandler      *ReviewHandler
	HealthHandler      *HealthHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		MatchingHandler:    NewMatchingHandler(base, svc.MatchingService),
		JobHandler:         NewJobHandler(base, svc.JobService, svc.ApplicationService),
		WorkerHandler:      NewWorkerHandler(base, svc.WorkerService, svc.ReviewService),
		ApplicationHandler: NewApplicationHandler(base, svc.ApplicationService),
		ReviewHandler:      NewReviewHandler(base, svc.ReviewService),
		HealthHandler:      NewHealthHandler(base),
	}
}
