package services

import (
	"errors"

	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/pkg/apperrors"
)

// Перевод ошибок репозиториев в AppError

func handleJobError(err error) error {
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrJobNotFound.WithError(err)
	}
	return apperrors.DatabaseError(err)
}

func handleWorkerError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrWorkerNotFound):
		return apperrors.ErrWorkerNotFound.WithError(err)
	case errors.Is(err, repositories.ErrWorkerAlreadyExists):
		return apperrors.ErrWorkerAlreadyRegistered.WithError(err)
	}
	return apperrors.DatabaseError(err)
}

func handleApplicationError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrApplicationNotFound):
		return apperrors.ErrApplicationNotFound.WithError(err)
	case errors.Is(err, repositories.ErrApplicationAlreadyExists):
		return apperrors.ErrApplicationExists.WithError(err)
	}
	return apperrors.DatabaseError(err)
}

func handleReviewError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrReviewAlreadyExists):
		return apperrors.ErrConflict(err, "review", "You have already reviewed this worker for this job")
	case errors.Is(err, repositories.ErrInvalidReviewRating):
		return apperrors.ErrInvalidOperation("review", err.Error())
	}
	return apperrors.DatabaseError(err)
}
