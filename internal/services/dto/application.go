package dto

import "time"

// AssignWorkerRequest - предложить работу исполнителю
type AssignWorkerRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
}

// UpdateApplicationStatusRequest - ответ исполнителя на предложение
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-decision"`
}

type ApplicationResponse struct {
	ID         string       `json:"id"`
	JobID      string       `json:"job_id"`
	WorkerID   string       `json:"worker_id"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	Job        *JobResponse `json:"job,omitempty"`
	WorkerName string       `json:"worker_name,omitempty"`
}

type ApplicationListResponse struct {
	Applications []*ApplicationResponse `json:"applications"`
	Total        int                    `json:"total"`
}
