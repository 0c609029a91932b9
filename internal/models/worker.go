package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type Worker struct {
	BaseModel
	UserID        string         `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	Skills        datatypes.JSON `json:"skills"` // ["plumbing", "welding"]
	Experience    int            `gorm:"not null;default:0;check:experience >= 0" json:"experience"`
	Location      string         `gorm:"not null;default:''" json:"location"`
	Contact       string         `json:"contact"`
	ProfilePicURL *string        `json:"profile_pic_url"`

	// Relations
	Profile *Profile `gorm:"foreignKey:UserID" json:"profiles,omitempty"`
	Reviews []Review `gorm:"foreignKey:WorkerID" json:"reviews,omitempty"`
}

// GetSkills возвращает навыки исполнителя как slice строк
func (w *Worker) GetSkills() []string {
	var skills []string
	if len(w.Skills) > 0 {
		_ = json.Unmarshal(w.Skills, &skills)
	}
	return skills
}

// SetSkills сохраняет навыки в JSON
func (w *Worker) SetSkills(skills []string) {
	if skills == nil {
		skills = []string{}
	}
	data, _ := json.Marshal(skills)
	w.Skills = datatypes.JSON(data)
}

// Ratings - оценки из подгруженных отзывов
func (w *Worker) Ratings() []int {
	ratings := make([]int, 0, len(w.Reviews))
	for _, r := range w.Reviews {
		ratings = append(ratings, r.Rating)
	}
	return ratings
}

// FullName - имя из профиля, если он подгружен
func (w *Worker) FullName() string {
	if w.Profile == nil {
		return ""
	}
	return w.Profile.FullName
}
