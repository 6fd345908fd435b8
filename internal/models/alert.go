package models

import "time"

// AlertType identifies what kind of activity produced an alert.
type AlertType string

const (
	// AlertFollowingReviewed fires when someone you follow posts a review.
	AlertFollowingReviewed AlertType = "FOLLOWING_REVIEWED"
	// AlertFollowingCommented fires when someone you follow comments on a review.
	AlertFollowingCommented AlertType = "FOLLOWING_COMMENTED"
	// AlertCommentOnYourReview fires when someone comments on your review.
	AlertCommentOnYourReview AlertType = "COMMENT_ON_YOUR_REVIEW"
	// AlertThreadComment fires when a thread you subscribe to gets a comment.
	AlertThreadComment AlertType = "THREAD_COMMENT"
	// AlertFollowedUserThread fires when someone you follow opens a thread.
	AlertFollowedUserThread AlertType = "FOLLOWED_USER_THREAD"
)

// Alert is a notification delivered to one recipient. The actor is never the
// recipient; fan-out suppresses self-notification.
type Alert struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	ActorID         uint      `gorm:"not null" json:"actor_id"`
	Actor           User      `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
	Type            AlertType `gorm:"type:varchar(30);not null" json:"type"`
	ReviewID        *uint     `json:"review_id,omitempty"`
	ReviewCommentID *uint     `json:"review_comment_id,omitempty"`
	BookID          *uint     `json:"book_id,omitempty"`
	ThreadID        *uint     `json:"thread_id,omitempty"`
	ThreadCommentID *uint     `json:"thread_comment_id,omitempty"`
	IsRead          bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt       time.Time `json:"created_at"`
}
