package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// ConversationSummary is the latest message exchanged with each partner.
type ConversationSummary struct {
	PartnerID   uint           `json:"partner_id"`
	LastMessage models.Message `json:"last_message"`
	UnreadCount int64          `json:"unread_count"`
}

// MessageRepository defines the interface for direct-message data operations
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	Update(ctx context.Context, message *models.Message) error
	ListBetween(ctx context.Context, userID, partnerID uint, limit, offset int) ([]models.Message, error)
	ListConversations(ctx context.Context, userID uint) ([]ConversationSummary, error)
	MarkRead(ctx context.Context, userID, partnerID uint) error
	UnreadCount(ctx context.Context, userID uint) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Message", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &message, nil
}

func (r *messageRepository) Update(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Save(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) ListBetween(ctx context.Context, userID, partnerID uint, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, partnerID, partnerID, userID).
		Order("created_at").
		Limit(limit).Offset(offset).
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

func (r *messageRepository) ListConversations(ctx context.Context, userID uint) ([]ConversationSummary, error) {
	// Distinct partners, newest conversation first.
	var partnerIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Select("CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS partner_id", userID).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Group("partner_id").
		Order("MAX(created_at) DESC").
		Pluck("partner_id", &partnerIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	summaries := make([]ConversationSummary, 0, len(partnerIDs))
	for _, partnerID := range partnerIDs {
		var last models.Message
		err := r.db.WithContext(ctx).
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				userID, partnerID, partnerID, userID).
			Order("created_at DESC").
			First(&last).Error
		if err != nil {
			return nil, models.NewInternalError(err)
		}

		var unread int64
		err = r.db.WithContext(ctx).
			Model(&models.Message{}).
			Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, userID, false).
			Count(&unread).Error
		if err != nil {
			return nil, models.NewInternalError(err)
		}

		summaries = append(summaries, ConversationSummary{
			PartnerID:   partnerID,
			LastMessage: last,
			UnreadCount: unread,
		})
	}
	return summaries, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, userID, partnerID uint) error {
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", partnerID, userID, false).
		Update("is_read", true).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *messageRepository) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
