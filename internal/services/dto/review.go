package dto

import "time"

type CreateReviewRequest struct {
	WorkerID string `json:"worker_id" validate:"required"`
	JobID    string `json:"job_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"max=2000"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	WorkerID   string    `json:"worker_id"`
	EmployerID string    `json:"employer_id"`
	JobID      string    `json:"job_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews       []*ReviewResponse `json:"reviews"`
	Total         int               `json:"total"`
	AverageRating float64           `json:"average_rating"`
}
