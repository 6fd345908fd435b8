package models

import (
	"time"
)

// Book represents a catalog entry. Writes are admin-only.
type Book struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null;index" json:"title"`
	Author      string     `gorm:"not null;index" json:"author"`
	ISBN        string     `gorm:"unique;not null" json:"isbn"`
	Price       float64    `gorm:"not null" json:"price"`
	CoverURL    string     `json:"cover_url"`
	Description string     `gorm:"type:text" json:"description"`
	PageCount   int        `json:"page_count"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Genres      []Genre    `gorm:"many2many:book_genres" json:"genres"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Genre is a catalog tag, shared across books.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}
