package models

type Application struct {
	BaseModel
	JobID    string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_worker" json:"job_id"`
	WorkerID string            `gorm:"type:varchar(36);not null;uniqueIndex:idx_application_job_worker;index" json:"worker_id"`
	Status   ApplicationStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`

	// Relations
	Job    *Job    `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Worker *Worker `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
