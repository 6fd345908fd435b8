package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.CartItem, error)
	GetByIDForUser(ctx context.Context, itemID, userID uint) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	DeleteForUser(ctx context.Context, itemID, userID uint) error
	ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	ClearForUser(ctx context.Context, userID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// GetByUserAndBook returns (nil, nil) when the user has no cart line for the book.
func (r *cartRepository) GetByUserAndBook(ctx context.Context, userID, bookID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

// GetByIDForUser scopes the lookup to the owning user so one user cannot
// address another's cart line by guessing ids.
func (r *cartRepository) GetByIDForUser(ctx context.Context, itemID, userID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Cart item", itemID)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *cartRepository) Create(ctx context.Context, item *models.CartItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Concurrent insert on the same (user, book); caller retries as update.
			return models.NewConflictError("Cart item already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *cartRepository) Update(ctx context.Context, item *models.CartItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *cartRepository) DeleteForUser(ctx context.Context, itemID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Cart item", itemID)
	}
	return nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Book").
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *cartRepository) ClearForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
