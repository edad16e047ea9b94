package models

import (
	"time"
)

// Favorite records that a user favorited a post. The composite primary
// key keeps the (post, user) pair unique at the storage layer.
type Favorite struct {
	PostID    uint      `gorm:"primaryKey" json:"post_id"`
	Post      Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
