package service

import (
	"context"
	"errors"
	"testing"

	"bookery/internal/models"
)

func TestReviewServiceUpsertCreatesAndFansOut(t *testing.T) {
	repo := noopReviewRepo()
	social := noopSocialRepo()
	social.listFollowerIDsFn = func(context.Context, uint) ([]uint, error) { return []uint{2}, nil }
	alertRepo := noopAlertRepo()
	fanouts := 0
	alertRepo.createBatchFn = func(context.Context, []models.Alert) error {
		fanouts++
		return nil
	}
	alerts := NewAlertService(alertRepo, social, noopThreadRepo(), nil)

	svc := NewReviewService(repo, noopBookRepo(), alerts, neverAdmin)
	review, isNew, err := svc.Upsert(context.Background(), 1, 2, "  A quiet, devastating book.  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isNew {
		t.Fatal("expected a new review")
	}
	if review.Content != "A quiet, devastating book." {
		t.Fatalf("content not trimmed: %q", review.Content)
	}
	if fanouts != 1 {
		t.Fatalf("expected one fan-out batch, got %d", fanouts)
	}
}

func TestReviewServiceUpsertOverwrites(t *testing.T) {
	repo := noopReviewRepo()
	repo.getByUserAndBookFn = func(context.Context, uint, uint) (*models.Review, error) {
		return &models.Review{ID: 5, UserID: 1, BookID: 2, Content: "old take"}, nil
	}

	svc := NewReviewService(repo, noopBookRepo(), noopAlerts(), neverAdmin)
	review, isNew, err := svc.Upsert(context.Background(), 1, 2, "new take")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if isNew {
		t.Fatal("expected overwrite of the existing review")
	}
	if review.Content != "new take" {
		t.Fatalf("content not overwritten: %q", review.Content)
	}
}

func TestReviewServiceUpsertEmptyContent(t *testing.T) {
	svc := NewReviewService(noopReviewRepo(), noopBookRepo(), noopAlerts(), neverAdmin)
	_, _, err := svc.Upsert(context.Background(), 1, 2, "   ")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		t.Fatalf("expected validation error, got %#v", err)
	}
}

func TestReviewServiceDeleteByIDForbiddenForStranger(t *testing.T) {
	repo := noopReviewRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Review, error) {
		return &models.Review{ID: id, UserID: 9}, nil
	}

	svc := NewReviewService(repo, noopBookRepo(), noopAlerts(), neverAdmin)
	err := svc.DeleteByID(context.Background(), 1, 5)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeForbidden {
		t.Fatalf("expected forbidden error, got %#v", err)
	}
}

func TestReviewServiceDeleteByIDAllowsAdmin(t *testing.T) {
	repo := noopReviewRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Review, error) {
		return &models.Review{ID: id, UserID: 9}, nil
	}
	deleted := false
	repo.deleteByIDFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewReviewService(repo, noopBookRepo(), noopAlerts(), alwaysAdmin)
	if err := svc.DeleteByID(context.Background(), 1, 5); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected the review to be deleted")
	}
}

func TestReviewServiceToggleLikeMatrix(t *testing.T) {
	tests := []struct {
		name     string
		existing *models.ReviewLike
		isLike   bool
		want     LikeState
	}{
		{"no row, like", nil, true, LikeStateLiked},
		{"no row, dislike", nil, false, LikeStateDisliked},
		{"liked, like again", &models.ReviewLike{ID: 1, IsLike: true}, true, LikeStateNeutral},
		{"disliked, dislike again", &models.ReviewLike{ID: 1, IsLike: false}, false, LikeStateNeutral},
		{"liked, dislike", &models.ReviewLike{ID: 1, IsLike: true}, false, LikeStateDisliked},
		{"disliked, like", &models.ReviewLike{ID: 1, IsLike: false}, true, LikeStateLiked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := noopReviewRepo()
			repo.getLikeFn = func(context.Context, uint, uint) (*models.ReviewLike, error) {
				return tt.existing, nil
			}

			svc := NewReviewService(repo, noopBookRepo(), noopAlerts(), neverAdmin)
			state, err := svc.ToggleLike(context.Background(), 1, 5, tt.isLike)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if state != tt.want {
				t.Fatalf("expected state %q, got %q", tt.want, state)
			}
		})
	}
}

func TestReviewServiceCreateCommentOnMissingReview(t *testing.T) {
	repo := noopReviewRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Review, error) {
		return nil, models.NewNotFoundError("Review", id)
	}

	svc := NewReviewService(repo, noopBookRepo(), noopAlerts(), neverAdmin)
	_, err := svc.CreateComment(context.Background(), 1, 99, "nice")
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeNotFound {
		t.Fatalf("expected not-found error, got %#v", err)
	}
}
