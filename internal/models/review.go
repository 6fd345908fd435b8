package models

import "time"

// Review is a user's prose review of a book. One row per user/book pair;
// submitting again overwrites the content.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_review_user_book" json:"user_id"`
	BookID    uint      `gorm:"not null;uniqueIndex:idx_review_user_book" json:"book_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Book      Book      `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewComment is a comment under a review.
type ReviewComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"not null;index" json:"review_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewLike records a like or dislike of a review. One row per user/review
// pair; IsLike false means dislike.
type ReviewLike struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ReviewID  uint      `gorm:"not null;uniqueIndex:idx_like_review_user" json:"review_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_like_review_user" json:"user_id"`
	IsLike    bool      `gorm:"not null" json:"is_like"`
	CreatedAt time.Time `json:"created_at"`
}
