package service

import (
	"context"
	"strings"

	"bookery/internal/models"
	"bookery/internal/repository"
)

const maxMessageLen = 5000

// MessageService provides direct-messaging business logic. Every send and
// conversation read is gated on the block table: a block in either direction
// between the two users rejects the operation.
type MessageService struct {
	messageRepo repository.MessageRepository
	socialRepo  repository.SocialRepository
	userRepo    repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(
	messageRepo repository.MessageRepository,
	socialRepo repository.SocialRepository,
	userRepo repository.UserRepository,
) *MessageService {
	return &MessageService{messageRepo: messageRepo, socialRepo: socialRepo, userRepo: userRepo}
}

func (s *MessageService) ensureNotBlocked(ctx context.Context, userID, partnerID uint) error {
	blocked, err := s.socialRepo.BlockExistsBetween(ctx, userID, partnerID)
	if err != nil {
		return err
	}
	if blocked {
		return models.NewBlockedError()
	}
	return nil
}

// Send delivers a message from userID to partnerID.
func (s *MessageService) Send(ctx context.Context, userID, partnerID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 5000 characters)")
	}
	if userID == partnerID {
		return nil, models.NewValidationError("You cannot message yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, partnerID); err != nil {
		return nil, err
	}
	if err := s.ensureNotBlocked(ctx, userID, partnerID); err != nil {
		return nil, err
	}

	message := &models.Message{SenderID: userID, ReceiverID: partnerID, Content: content}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListConversation returns the message history between the caller and a
// partner, oldest first, and marks the partner's messages as read.
func (s *MessageService) ListConversation(ctx context.Context, userID, partnerID uint, limit, offset int) ([]models.Message, error) {
	if err := s.ensureNotBlocked(ctx, userID, partnerID); err != nil {
		return nil, err
	}
	messages, err := s.messageRepo.ListBetween(ctx, userID, partnerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if err := s.messageRepo.MarkRead(ctx, userID, partnerID); err != nil {
		return nil, err
	}
	return messages, nil
}

// ListConversations returns one summary per conversation partner.
func (s *MessageService) ListConversations(ctx context.Context, userID uint) ([]repository.ConversationSummary, error) {
	return s.messageRepo.ListConversations(ctx, userID)
}

// Edit replaces a message's content. Only the sender may edit, and deleted
// messages cannot be edited.
func (s *MessageService) Edit(ctx context.Context, userID, messageID uint, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxMessageLen {
		return nil, models.NewValidationError("Message too long (max 5000 characters)")
	}

	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.SenderID != userID {
		return nil, models.NewForbiddenError("You can only edit your own messages")
	}
	if message.IsDeleted {
		return nil, models.NewValidationError("Cannot edit a deleted message")
	}

	message.Content = content
	message.IsEdited = true
	if err := s.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Delete soft-deletes a message: the row stays but its content is replaced
// with a placeholder. Only the sender may delete.
func (s *MessageService) Delete(ctx context.Context, userID, messageID uint) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.SenderID != userID {
		return nil, models.NewForbiddenError("You can only delete your own messages")
	}
	if message.IsDeleted {
		return message, nil
	}

	message.Content = models.DeletedMessagePlaceholder
	message.IsDeleted = true
	if err := s.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// MarkConversationRead marks every message from partnerID to the caller read.
func (s *MessageService) MarkConversationRead(ctx context.Context, userID, partnerID uint) error {
	return s.messageRepo.MarkRead(ctx, userID, partnerID)
}

// UnreadCount returns how many unread messages the caller has.
func (s *MessageService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.messageRepo.UnreadCount(ctx, userID)
}
