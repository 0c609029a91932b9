package models

type Review struct {
	BaseModel
	WorkerID   string `gorm:"type:varchar(36);not null;index" json:"worker_id"`
	EmployerID string `gorm:"type:varchar(36);not null;index" json:"employer_id"`
	JobID      string `gorm:"type:varchar(36);not null;index" json:"job_id"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string `json:"comment"`
}
