package service

import (
	"context"
	"errors"
	"strings"

	"bookery/internal/models"
	"bookery/internal/repository"
)

const (
	maxThreadTitleLen   = 200
	maxThreadContentLen = 20000
)

// ThreadService provides forum thread business logic.
type ThreadService struct {
	threadRepo repository.ThreadRepository
	alerts     *AlertService
	isAdmin    func(ctx context.Context, userID uint) (bool, error)
}

// NewThreadService returns a new ThreadService.
func NewThreadService(
	threadRepo repository.ThreadRepository,
	alerts *AlertService,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *ThreadService {
	return &ThreadService{threadRepo: threadRepo, alerts: alerts, isAdmin: isAdmin}
}

// Create opens a new thread. The author is subscribed to the thread in the
// same transaction that inserts it, then FOLLOWED_USER_THREAD fans out to the
// author's followers.
func (s *ThreadService) Create(ctx context.Context, userID uint, title, content string) (*models.Thread, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > maxThreadTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > maxThreadContentLen {
		return nil, models.NewValidationError("Content too long (max 20000 characters)")
	}

	thread := &models.Thread{UserID: userID, Title: title, Content: content}
	if err := s.threadRepo.Create(ctx, thread); err != nil {
		return nil, err
	}
	s.alerts.ThreadCreated(ctx, userID, thread)
	return thread, nil
}

// Get returns a thread with its author and comments.
func (s *ThreadService) Get(ctx context.Context, threadID uint) (*models.Thread, error) {
	return s.threadRepo.GetByID(ctx, threadID)
}

// List returns threads, newest first.
func (s *ThreadService) List(ctx context.Context, limit, offset int) ([]models.Thread, error) {
	return s.threadRepo.List(ctx, limit, offset)
}

// Update edits a thread's title and/or content. Only the author may edit.
func (s *ThreadService) Update(ctx context.Context, callerID, threadID uint, title, content *string) (*models.Thread, error) {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread.UserID != callerID {
		return nil, models.NewForbiddenError("You can only edit your own threads")
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		if len(trimmed) > maxThreadTitleLen {
			return nil, models.NewValidationError("Title too long (max 200 characters)")
		}
		thread.Title = trimmed
	}
	if content != nil {
		trimmed := strings.TrimSpace(*content)
		if trimmed == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		if len(trimmed) > maxThreadContentLen {
			return nil, models.NewValidationError("Content too long (max 20000 characters)")
		}
		thread.Content = trimmed
	}

	if err := s.threadRepo.Update(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// Delete removes a thread. Only the author or an admin may delete it.
func (s *ThreadService) Delete(ctx context.Context, callerID, threadID uint) error {
	thread, err := s.threadRepo.GetByID(ctx, threadID)
	if err != nil {
		return err
	}
	if thread.UserID != callerID {
		admin, err := s.isAdmin(ctx, callerID)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own threads")
		}
	}
	return s.threadRepo.Delete(ctx, threadID)
}

// CreateComment adds a comment under a thread and fans out THREAD_COMMENT to
// the thread's subscribers.
func (s *ThreadService) CreateComment(ctx context.Context, userID, threadID uint, content string) (*models.ThreadComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	if _, err := s.threadRepo.GetByID(ctx, threadID); err != nil {
		return nil, err
	}

	comment := &models.ThreadComment{ThreadID: threadID, UserID: userID, Content: content}
	if err := s.threadRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	s.alerts.ThreadCommented(ctx, userID, threadID, comment)
	return comment, nil
}

// DeleteComment removes a thread comment. Only its author or an admin may
// delete it.
func (s *ThreadService) DeleteComment(ctx context.Context, callerID, commentID uint) error {
	comment, err := s.threadRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != callerID {
		admin, err := s.isAdmin(ctx, callerID)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own comments")
		}
	}
	return s.threadRepo.DeleteCommentByID(ctx, commentID)
}

// Follow subscribes the caller to a thread. Already-subscribed is a no-op.
func (s *ThreadService) Follow(ctx context.Context, userID, threadID uint) error {
	if _, err := s.threadRepo.GetByID(ctx, threadID); err != nil {
		return err
	}
	existing, err := s.threadRepo.GetFollow(ctx, userID, threadID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	err = s.threadRepo.CreateFollow(ctx, &models.ThreadFollow{UserID: userID, ThreadID: threadID})
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
		// Concurrent follow already inserted the row.
		return nil
	}
	return err
}

// Unfollow unsubscribes the caller from a thread.
func (s *ThreadService) Unfollow(ctx context.Context, userID, threadID uint) error {
	return s.threadRepo.DeleteFollow(ctx, userID, threadID)
}
