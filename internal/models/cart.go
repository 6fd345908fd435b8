package models

import "time"

// CartItem is one book in a user's cart. A user holds at most one row per
// book; adding the same book again increments Quantity.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"user_id"`
	BookID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_book" json:"book_id"`
	Book      Book      `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
