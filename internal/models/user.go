package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DisplayName string    `gorm:"size:30;not null" json:"display_name"`
	Username    string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Password    string    `gorm:"not null" json:"-"` // bcrypt hash
	Caption     string    `gorm:"type:text;default:''" json:"caption"`
	Area        string    `gorm:"size:100" json:"area"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// No DeletedAt, account removal is a hard delete
}
