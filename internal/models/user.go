// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account that can author dweets and comments.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"not null" json:"-"`
	Password    string    `gorm:"not null" json:"-"`
	IsModerator bool      `gorm:"not null;default:false" json:"is_moderator"`
	CreatedAt   time.Time `json:"date_joined"`
	UpdatedAt   time.Time `json:"-"`
}
