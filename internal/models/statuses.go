package models

type JobStatus string
type ApplicationStatus string
type UserType string

const (
	JobStatusPending  JobStatus = "pending"
	JobStatusAssigned JobStatus = "assigned"
	JobStatusAccepted JobStatus = "accepted"
	JobStatusDeclined JobStatus = "declined"
	JobStatusClosed   JobStatus = "closed"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusDeclined ApplicationStatus = "declined"

	UserTypeEmployer UserType = "employer"
	UserTypeWorker   UserType = "worker"
)

// IsOpen - работу еще можно предложить исполнителю или закрыть по сроку
func (s JobStatus) IsOpen() bool {
	return s == JobStatusPending || s == JobStatusAssigned
}

func (s ApplicationStatus) IsDecision() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusDeclined
}
