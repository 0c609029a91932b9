package dto

import "time"

// RegisterWorkerRequest - анкета исполнителя
type RegisterWorkerRequest struct {
	FullName      string   `json:"full_name" validate:"required,max=200"`
	Skills        []string `json:"skills" validate:"omitempty,dive,max=100"`
	Experience    int      `json:"experience" validate:"gte=0,lte=80"`
	Location      string   `json:"location" validate:"max=200"`
	Contact       string   `json:"contact" validate:"max=200"`
	ProfilePicURL *string  `json:"profile_pic_url" validate:"omitempty,url"`
}

type WorkerResponse struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	Skills        []string       `json:"skills"`
	Experience    int            `json:"experience"`
	Location      string         `json:"location"`
	Contact       string         `json:"contact"`
	ProfilePicURL *string        `json:"profile_pic_url"`
	Profiles      ProfileName    `json:"profiles"`
	Reviews       []ReviewRating `json:"reviews"`
	AverageRating float64        `json:"average_rating"`
	CreatedAt     time.Time      `json:"created_at"`
}

type WorkerListResponse struct {
	Workers []*WorkerResponse `json:"workers"`
	Total   int               `json:"total"`
}
