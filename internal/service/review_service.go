package service

import (
	"context"
	"errors"
	"strings"

	"bookery/internal/models"
	"bookery/internal/repository"
)

const maxReviewLen = 20000

// LikeState is the resulting state of a like toggle.
type LikeState string

const (
	LikeStateLiked    LikeState = "liked"
	LikeStateDisliked LikeState = "disliked"
	LikeStateNeutral  LikeState = "neutral"
)

// ReviewService provides review, review-comment and like-toggle business logic.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	bookRepo   repository.BookRepository
	alerts     *AlertService
	isAdmin    func(ctx context.Context, userID uint) (bool, error)
}

// NewReviewService returns a new ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	bookRepo repository.BookRepository,
	alerts *AlertService,
	isAdmin func(ctx context.Context, userID uint) (bool, error),
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
		alerts:     alerts,
		isAdmin:    isAdmin,
	}
}

// Upsert creates or overwrites the caller's review of a book and fans out
// FOLLOWING_REVIEWED to the caller's followers. The returned bool is true
// when a new row was created.
func (s *ReviewService) Upsert(ctx context.Context, userID, bookID uint, content string) (*models.Review, bool, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, false, models.NewValidationError("Content is required")
	}
	if len(content) > maxReviewLen {
		return nil, false, models.NewValidationError("Review too long (max 20000 characters)")
	}
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, false, err
	}

	existing, err := s.reviewRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		existing.Content = content
		if err := s.reviewRepo.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		s.alerts.ReviewPosted(ctx, userID, existing)
		return existing, false, nil
	}

	review := &models.Review{UserID: userID, BookID: bookID, Content: content}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeConflict {
			// Concurrent upsert created the row first; overwrite it.
			return s.overwriteExisting(ctx, userID, bookID, content)
		}
		return nil, false, err
	}
	s.alerts.ReviewPosted(ctx, userID, review)
	return review, true, nil
}

func (s *ReviewService) overwriteExisting(ctx context.Context, userID, bookID uint, content string) (*models.Review, bool, error) {
	existing, err := s.reviewRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, models.NewInternalError(errors.New("review vanished during upsert retry"))
	}
	existing.Content = content
	if err := s.reviewRepo.Update(ctx, existing); err != nil {
		return nil, false, err
	}
	s.alerts.ReviewPosted(ctx, userID, existing)
	return existing, false, nil
}

// Get returns the caller's review for a book.
func (s *ReviewService) Get(ctx context.Context, userID, bookID uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, models.NewNotFoundError("Review", bookID)
	}
	return review, nil
}

// ListByUser returns a user's reviews, most recently updated first.
func (s *ReviewService) ListByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByUser(ctx, userID)
}

// ListByBook returns a book's reviews, newest first.
func (s *ReviewService) ListByBook(ctx context.Context, bookID uint, limit, offset int) ([]models.Review, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListByBook(ctx, bookID, limit, offset)
}

// DeleteOwn removes the caller's review for a book.
func (s *ReviewService) DeleteOwn(ctx context.Context, userID, bookID uint) error {
	return s.reviewRepo.DeleteForUser(ctx, bookID, userID)
}

// DeleteByID removes a review by id. Only the review's author or an admin may
// delete it.
func (s *ReviewService) DeleteByID(ctx context.Context, callerID, reviewID uint) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != callerID {
		admin, err := s.isAdmin(ctx, callerID)
		if err != nil {
			return models.NewInternalError(err)
		}
		if !admin {
			return models.NewForbiddenError("You can only delete your own reviews")
		}
	}
	return s.reviewRepo.DeleteByID(ctx, reviewID)
}

// CreateComment adds a comment under a review and fans out
// FOLLOWING_COMMENTED plus COMMENT_ON_YOUR_REVIEW.
func (s *ReviewService) CreateComment(ctx context.Context, userID, reviewID uint, content string) (*models.ReviewComment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &models.ReviewComment{ReviewID: reviewID, UserID: userID, Content: content}
	if err := s.reviewRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	s.alerts.ReviewCommented(ctx, userID, review, comment)
	return comment, nil
}

// ListComments returns a review's comments, oldest first.
func (s *ReviewService) ListComments(ctx context.Context, reviewID uint) ([]models.ReviewComment, error) {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return nil, err
	}
	return s.reviewRepo.ListComments(ctx, reviewID)
}

// DeleteComment removes a review comment. Only its author or an admin may
// delete it.
func (s *ReviewService) DeleteComment(ctx context.Context, callerID, commentID uint) error {
	comment, err := s.reviewRepo.GetCommentByID(ctx, commentID)
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
	return s.reviewRepo.DeleteCommentByID(ctx, commentID)
}

// ToggleLike applies the three-way like toggle:
//
//	no row  + request        -> create row with the requested polarity
//	same polarity as request -> delete row (toggle off)
//	opposite polarity        -> flip polarity in place
func (s *ReviewService) ToggleLike(ctx context.Context, userID, reviewID uint, isLike bool) (LikeState, error) {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return "", err
	}

	existing, err := s.reviewRepo.GetLike(ctx, reviewID, userID)
	if err != nil {
		return "", err
	}

	switch {
	case existing == nil:
		like := &models.ReviewLike{ReviewID: reviewID, UserID: userID, IsLike: isLike}
		if err := s.reviewRepo.CreateLike(ctx, like); err != nil {
			return "", err
		}
	case existing.IsLike == isLike:
		if err := s.reviewRepo.DeleteLike(ctx, existing.ID); err != nil {
			return "", err
		}
		return LikeStateNeutral, nil
	default:
		existing.IsLike = isLike
		if err := s.reviewRepo.UpdateLike(ctx, existing); err != nil {
			return "", err
		}
	}

	if isLike {
		return LikeStateLiked, nil
	}
	return LikeStateDisliked, nil
}
