package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateFromCart writes the order with its items and clears the user's cart
	// in one transaction.
	CreateFromCart(ctx context.Context, order *models.Order) error
	GetByIDForUser(ctx context.Context, orderID, userID uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) CreateFromCart(ctx context.Context, order *models.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", order.UserID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *orderRepository) GetByIDForUser(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		Preload("Items").
		Preload("Items.Book").
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Order", orderID)
		}
		return nil, models.NewInternalError(err)
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return orders, nil
}
