package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	EmployerID       string         `gorm:"type:varchar(36);not null;index" json:"employer_id"`
	Title            string         `gorm:"not null" json:"title"`
	Description      string         `json:"description"`
	Budget           float64        `json:"budget"`
	DeadlineDays     int            `gorm:"not null;default:0" json:"deadline_days"`
	Location         string         `gorm:"not null;default:''" json:"location"`
	SkillsRequired   datatypes.JSON `json:"skills_required"` // ["go", "postgres"]
	Status           JobStatus      `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	AcceptedWorkerID *string        `gorm:"type:varchar(36)" json:"accepted_worker_id,omitempty"`
}

// GetSkills возвращает требуемые навыки как slice строк
func (j *Job) GetSkills() []string {
	var skills []string
	if len(j.SkillsRequired) > 0 {
		_ = json.Unmarshal(j.SkillsRequired, &skills)
	}
	return skills
}

// SetSkills сохраняет навыки в JSON
func (j *Job) SetSkills(skills []string) {
	if skills == nil {
		skills = []string{}
	}
	data, _ := json.Marshal(skills)
	j.SkillsRequired = datatypes.JSON(data)
}

// ExpiresAt - момент, после которого открытая работа закрывается
func (j *Job) ExpiresAt() time.Time {
	return j.CreatedAt.AddDate(0, 0, j.DeadlineDays)
}

// IsExpired - срок вышел; deadline_days = 0 означает "без срока"
func (j *Job) IsExpired(now time.Time) bool {
	return j.DeadlineDays > 0 && j.Status.IsOpen() && j.ExpiresAt().Before(now)
}
