package database

import (
	"fmt"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Book{},
		&models.Genre{},
		&models.CartItem{},
		&models.FavouriteBook{},
		&models.Rating{},
		&models.Review{},
		&models.ReviewComment{},
		&models.ReviewLike{},
		&models.Thread{},
		&models.ThreadComment{},
		&models.ThreadFollow{},
		&models.Message{},
		&models.Block{},
		&models.Follow{},
		&models.Alert{},
		&models.Order{},
		&models.OrderItem{},
	}
}

// Migrate applies the GORM auto-migration for every persistent model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(PersistentModels()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
