package apperrors

import "net/http"

// ErrNotFound - фабрика для "не найдено" (404), оборачивает ошибку репозитория.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict - общая фабрика для конфликтов (409)
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Jobs ---

var ErrJobIDRequired = New(
	CodeValidationFailed,
	"matching",
	"Job ID is required",
	http.StatusBadRequest,
)

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

// ErrNotJobOwner - работодатель пытается управлять чужой вакансией.
var ErrNotJobOwner = New(
	CodeForbidden,
	"job",
	"You do not own this job",
	http.StatusForbidden,
)

var ErrInvalidJobStatus = New(
	CodeInvalidStatus,
	"job",
	"Operation not allowed for the current job status",
	http.StatusConflict,
)

// --- Workers ---

var ErrWorkerNotFound = New(
	CodeNotFound,
	"worker",
	"Worker not found",
	http.StatusNotFound,
)

var ErrWorkerAlreadyRegistered = New(
	CodeAlreadyExists,
	"worker",
	"Worker profile already exists for this user",
	http.StatusConflict,
)

// --- Applications ---

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

// ErrApplicationExists - работнику уже отправлено предложение по этой вакансии.
var ErrApplicationExists = New(
	CodeAlreadyExists,
	"application",
	"This worker has already been offered this job",
	http.StatusConflict,
)

var ErrNotApplicationOwner = New(
	CodeForbidden,
	"application",
	"This application belongs to another worker",
	http.StatusForbidden,
)

var ErrApplicationNotPending = New(
	CodeInvalidStatus,
	"application",
	"Only pending applications can be accepted or declined",
	http.StatusConflict,
)

// --- Reviews ---

var ErrReviewNotAllowed = New(
	CodeForbidden,
	"review",
	"Reviews are allowed only for workers offered your job",
	http.StatusForbidden,
)

// --- Auth ---

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid token",
	http.StatusUnauthorized,
)

var ErrTokenExpired = New(
	CodeTokenExpired,
	"auth",
	"Token expired",
	http.StatusUnauthorized,
)
