package dto

import (
	"time"

	"jobmatch_backend/internal/algorithms"
)

// ========================
// Matching DTOs
// ========================

// MatchRequest - тело POST /ai-match
type MatchRequest struct {
	JobID string `json:"job_id"`
}

// ProfileName - вложенный профиль в выдаче подбора
type ProfileName struct {
	FullName string `json:"full_name"`
}

// ReviewRating - вложенная оценка в выдаче подбора
type ReviewRating struct {
	Rating int `json:"rating"`
}

// MatchedWorker - исполнитель с баллом
type MatchedWorker struct {
	ID            string                    `json:"id"`
	UserID        string                    `json:"user_id"`
	Skills        []string                  `json:"skills"`
	Experience    int                       `json:"experience"`
	Location      string                    `json:"location"`
	Contact       string                    `json:"contact"`
	ProfilePicURL *string                   `json:"profile_pic_url"`
	Profiles      ProfileName               `json:"profiles"`
	Reviews       []ReviewRating            `json:"reviews"`
	MatchScore    int                       `json:"matchScore"`
	Breakdown     algorithms.ScoreBreakdown `json:"breakdown"`
}

// MatchResponse - ответ подбора
type MatchResponse struct {
	Matches []*MatchedWorker `json:"matches"`
	Total   int              `json:"total"`
}

// MatchRunEntry - позиция в журнале запусков
type MatchRunEntry struct {
	WorkerID   string `json:"worker_id"`
	MatchScore int    `json:"match_score"`
}

// MatchRunResponse - запись журнала запусков подбора
type MatchRunResponse struct {
	ID          string          `json:"id"`
	JobID       string          `json:"job_id"`
	RequestedBy string          `json:"requested_by"`
	PoolSize    int             `json:"pool_size"`
	Results     []MatchRunEntry `json:"results"`
	CreatedAt   time.Time       `json:"created_at"`
}

type MatchRunListResponse struct {
	Runs  []*MatchRunResponse `json:"runs"`
	Total int                 `json:"total"`
}
