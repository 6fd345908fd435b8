package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// AlertRepository defines the interface for alert data operations
type AlertRepository interface {
	CreateBatch(ctx context.Context, alerts []models.Alert) error
	GetByIDForUser(ctx context.Context, alertID, userID uint) (*models.Alert, error)
	MarkRead(ctx context.Context, alertID, userID uint) error
	MarkAllRead(ctx context.Context, userID uint) error
	DeleteForUser(ctx context.Context, alertID, userID uint) error
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Alert, error)
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

// CreateBatch writes one row per audience member in a single batched insert.
func (r *alertRepository) CreateBatch(ctx context.Context, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).CreateInBatches(alerts, 100).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *alertRepository) GetByIDForUser(ctx context.Context, alertID, userID uint) (*models.Alert, error) {
	var alert models.Alert
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", alertID, userID).
		First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Alert", alertID)
		}
		return nil, models.NewInternalError(err)
	}
	return &alert, nil
}

func (r *alertRepository) MarkRead(ctx context.Context, alertID, userID uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Alert", alertID)
	}
	return nil
}

func (r *alertRepository) MarkAllRead(ctx context.Context, userID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *alertRepository) DeleteForUser(ctx context.Context, alertID, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", alertID, userID).
		Delete(&models.Alert{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Alert", alertID)
	}
	return nil
}

func (r *alertRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Actor").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&alerts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return alerts, nil
}

func (r *alertRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Alert{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
