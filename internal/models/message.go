package models

import "time"

// DeletedMessagePlaceholder replaces the content of a soft-deleted message.
const DeletedMessagePlaceholder = "This message was deleted."

// Message is a direct message between two users. Deleted messages keep their
// row: the content becomes DeletedMessagePlaceholder and further edits are
// rejected.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	IsDeleted  bool      `gorm:"default:false" json:"is_deleted"`
	IsEdited   bool      `gorm:"default:false" json:"is_edited"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
