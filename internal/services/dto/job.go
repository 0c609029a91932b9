package dto

import (
	"strings"
	"time"
)

// CreateJobRequest - публикация работы.
// Skills можно передать списком или строкой через запятую.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=5000"`
	Budget       float64  `json:"budget" validate:"gte=0"`
	DeadlineDays int      `json:"deadline_days" validate:"gte=0,lte=365"`
	Location     string   `json:"location" validate:"max=200"`
	Skills       []string `json:"skills_required" validate:"omitempty,dive,max=100"`
	SkillsText   string   `json:"skills" validate:"max=1000"`
}

// NormalizedSkills объединяет Skills и SkillsText, убирая пробелы и пустые значения
func (r *CreateJobRequest) NormalizedSkills() []string {
	raw := append([]string{}, r.Skills...)
	if r.SkillsText != "" {
		raw = append(raw, strings.Split(r.SkillsText, ",")...)
	}
	return SplitSkills(raw)
}

// SplitSkills чистит список навыков
func SplitSkills(raw []string) []string {
	skills := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

type JobResponse struct {
	ID               string    `json:"id"`
	EmployerID       string    `json:"employer_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Budget           float64   `json:"budget"`
	DeadlineDays     int       `json:"deadline_days"`
	Location         string    `json:"location"`
	SkillsRequired   []string  `json:"skills_required"`
	Status           string    `json:"status"`
	AcceptedWorkerID *string   `json:"accepted_worker_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// JobListQuery - фильтр списка своих работ
type JobListQuery struct {
	Status string `form:"status" validate:"omitempty,is-job-status"`
}

type JobListResponse struct {
	Jobs  []*JobResponse `json:"jobs"`
	Total int            `json:"total"`
}
