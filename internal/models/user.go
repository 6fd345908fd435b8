// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered reader account.
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"unique;not null" json:"name"`
	Email       string         `gorm:"unique;not null" json:"email"`
	Password    string         `gorm:"not null" json:"-"`
	IsAdmin     bool           `gorm:"default:false" json:"is_admin"`
	Bio         string         `json:"bio"`
	Avatar      string         `json:"avatar"`
	Title       string         `json:"title"`
	Gender      string         `json:"gender"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
