package models

import "time"

// FavouriteBook marks a book as a favourite of a user. At most one row per
// user/book pair; re-adding is a no-op.
type FavouriteBook struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_fav_user_book" json:"user_id"`
	BookID    uint      `gorm:"not null;uniqueIndex:idx_fav_user_book" json:"book_id"`
	Book      Book      `gorm:"foreignKey:BookID" json:"book,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ReadingStatus is a user's progress with a book.
type ReadingStatus string

const (
	StatusCompleted        ReadingStatus = "COMPLETED"
	StatusWantToRead       ReadingStatus = "WANT_TO_READ"
	StatusCurrentlyReading ReadingStatus = "CURRENTLY_READING"
	StatusDNF              ReadingStatus = "DNF"
)

// Valid reports whether s is a known reading status.
func (s ReadingStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusWantToRead, StatusCurrentlyReading, StatusDNF:
		return true
	}
	return false
}

// Rating holds a user's star rating and reading status for a book. One row
// per user/book pair; submitting again overwrites in place.
type Rating struct {
	ID        uint          `gorm:"primaryKey" json:"id"`
	UserID    uint          `gorm:"not null;uniqueIndex:idx_rating_user_book" json:"user_id"`
	BookID    uint          `gorm:"not null;uniqueIndex:idx_rating_user_book" json:"book_id"`
	Book      Book          `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Stars     *int          `json:"stars,omitempty"`
	Status    ReadingStatus `gorm:"type:varchar(20)" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
