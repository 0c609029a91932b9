package services

import (
	"net/mail"

	"jobmatch_backend/internal/email"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"
)

type NotificationService interface {
	// NotifyWorkerAssigned сообщает исполнителю о предложенной работе.
	// Письмо уходит, только если в контактах указан email.
	NotifyWorkerAssigned(worker *models.Worker, job *models.Job) error
}

type notificationService struct {
	provider email.Provider
}

func NewNotificationService(provider email.Provider) NotificationService {
	return &notificationService{provider: provider}
}

func (s *notificationService) NotifyWorkerAssigned(worker *models.Worker, job *models.Job) error {
	addr, err := mail.ParseAddress(worker.Contact)
	if err != nil {
		logger.Debug("Worker contact is not an email, skipping notification", "worker_id", worker.ID)
		return nil
	}

	err = s.provider.SendTemplate(
		[]string{addr.Address},
		"New job offer: "+job.Title,
		email.TemplateJobOffer,
		email.TemplateData{
			"WorkerName": worker.FullName(),
			"JobTitle":   job.Title,
			"Location":   job.Location,
		},
	)
	if err != nil {
		logger.Error("Failed to send job offer email", "worker_id", worker.ID, "job_id", job.ID, "error", err)
		return err
	}

	logger.Info("Job offer email sent", "worker_id", worker.ID, "job_id", job.ID)
	return nil
}
