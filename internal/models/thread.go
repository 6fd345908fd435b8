package models

import "time"

// Thread is a forum topic opened by a user. The author is subscribed via a
// ThreadFollow row in the same transaction that creates the thread.
type Thread struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    uint            `gorm:"not null;index" json:"user_id"`
	User      User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title     string          `gorm:"not null" json:"title"`
	Content   string          `gorm:"type:text;not null" json:"content"`
	Comments  []ThreadComment `gorm:"foreignKey:ThreadID" json:"comments,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ThreadComment is a reply inside a thread.
type ThreadComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ThreadID  uint      `gorm:"not null;index" json:"thread_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ThreadFollow subscribes a user to a thread's comment alerts.
type ThreadFollow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_thread_follow" json:"user_id"`
	ThreadID  uint      `gorm:"not null;uniqueIndex:idx_thread_follow" json:"thread_id"`
	CreatedAt time.Time `json:"created_at"`
}
