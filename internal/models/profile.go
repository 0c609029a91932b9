package models

import "time"

// Profile - запись пользователя identity provider'а.
// ID совпадает с subject токена.
type Profile struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	FullName  string    `gorm:"not null;default:''" json:"full_name"`
	UserType  UserType  `gorm:"type:varchar(16);not null" json:"user_type"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
