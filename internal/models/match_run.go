package models

import "gorm.io/datatypes"

// MatchRunEntry - одна позиция выдачи подбора
type MatchRunEntry struct {
	WorkerID   string `json:"worker_id"`
	MatchScore int    `json:"match_score"`
}

// MatchRun - журнал запусков подбора исполнителей под работу
type MatchRun struct {
	BaseModel
	JobID       string                            `gorm:"type:varchar(36);not null;index" json:"job_id"`
	RequestedBy string                            `gorm:"type:varchar(36);not null" json:"requested_by"`
	PoolSize    int                               `gorm:"not null" json:"pool_size"`
	Results     datatypes.JSONSlice[MatchRunEntry] `json:"results"`
}
