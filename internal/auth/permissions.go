package auth

// Разрешения по типу пользователя
const (
	PermJobsWrite         = "jobs:write"
	PermMatchesRun        = "matches:run"
	PermApplicationsOffer = "applications:offer"
	PermReviewsWrite      = "reviews:write"

	PermWorkerRegister      = "worker:register"
	PermApplicationsRespond = "applications:respond"
)

const (
	UserTypeEmployer = "employer"
	UserTypeWorker   = "worker"
)

// Permissions список разрешений
var Permissions = map[string][]string{
	UserTypeEmployer: {
		PermJobsWrite,
		PermMatchesRun,
		PermApplicationsOffer,
		PermReviewsWrite,
	},
	UserTypeWorker: {
		PermWorkerRegister,
		PermApplicationsRespond,
	},
}

// HasPermission проверяет есть ли у типа пользователя указанное разрешение
func HasPermission(userType, permission string) bool {
	permissions, exists := Permissions[userType]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
