package validator

import (
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			logger.Fatal("failed to register custom validation tag", "tag", tag, "error", err)
		}
	}

	// 'is-job-status': фильтр списка работ
	mustRegister("is-job-status", validateJobStatus)

	// 'is-application-decision': ответ исполнителя на предложение
	mustRegister("is-application-decision", validateApplicationDecision)
}

// --- Функции валидации ---

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' обрабатывает пустые
	}
	switch models.JobStatus(value) {
	case models.JobStatusPending, models.JobStatusAssigned, models.JobStatusAccepted,
		models.JobStatusDeclined, models.JobStatusClosed:
		return true
	default:
		return false
	}
}

func validateApplicationDecision(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).IsDecision()
}
