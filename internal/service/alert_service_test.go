package service

import (
	"context"
	"testing"

	"bookery/internal/models"
)

func TestAlertServiceReviewPostedFansOutToFollowers(t *testing.T) {
	social := noopSocialRepo()
	social.listFollowerIDsFn = func(context.Context, uint) ([]uint, error) {
		return []uint{2, 3, 4}, nil
	}
	alerts := noopAlertRepo()
	var written []models.Alert
	alerts.createBatchFn = func(_ context.Context, batch []models.Alert) error {
		written = batch
		return nil
	}

	svc := NewAlertService(alerts, social, noopThreadRepo(), nil)
	svc.ReviewPosted(context.Background(), 1, &models.Review{ID: 10, UserID: 1, BookID: 20})

	if len(written) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(written))
	}
	for _, a := range written {
		if a.Type != models.AlertFollowingReviewed || a.ActorID != 1 {
			t.Fatalf("unexpected alert: %+v", a)
		}
		if a.ReviewID == nil || *a.ReviewID != 10 {
			t.Fatalf("alert missing review reference: %+v", a)
		}
	}
}

func TestAlertServiceCommentOnOwnReviewSuppressed(t *testing.T) {
	alerts := noopAlertRepo()
	var batches [][]models.Alert
	alerts.createBatchFn = func(_ context.Context, batch []models.Alert) error {
		batches = append(batches, batch)
		return nil
	}

	svc := NewAlertService(alerts, noopSocialRepo(), noopThreadRepo(), nil)
	review := &models.Review{ID: 10, UserID: 1, BookID: 20}
	svc.ReviewCommented(context.Background(), 1, review, &models.ReviewComment{ID: 30, UserID: 1})

	// No followers and commenting on your own review: nothing written at all.
	if len(batches) != 0 {
		t.Fatalf("expected no alerts, got %v", batches)
	}
}

func TestAlertServiceCommentNotifiesReviewOwner(t *testing.T) {
	alerts := noopAlertRepo()
	var written []models.Alert
	alerts.createBatchFn = func(_ context.Context, batch []models.Alert) error {
		written = append(written, batch...)
		return nil
	}

	svc := NewAlertService(alerts, noopSocialRepo(), noopThreadRepo(), nil)
	review := &models.Review{ID: 10, UserID: 7, BookID: 20}
	svc.ReviewCommented(context.Background(), 1, review, &models.ReviewComment{ID: 30, UserID: 1})

	if len(written) != 1 {
		t.Fatalf("expected one owner alert, got %d", len(written))
	}
	if written[0].UserID != 7 || written[0].Type != models.AlertCommentOnYourReview {
		t.Fatalf("unexpected alert: %+v", written[0])
	}
}

func TestAlertServiceThreadCommentExcludesCommenter(t *testing.T) {
	threads := noopThreadRepo()
	threads.listFollowerIDsFn = func(context.Context, uint) ([]uint, error) {
		// The commenter follows the thread too.
		return []uint{1, 2, 3}, nil
	}
	alerts := noopAlertRepo()
	var written []models.Alert
	alerts.createBatchFn = func(_ context.Context, batch []models.Alert) error {
		written = batch
		return nil
	}

	svc := NewAlertService(alerts, noopSocialRepo(), threads, nil)
	svc.ThreadCommented(context.Background(), 1, 40, &models.ThreadComment{ID: 50, UserID: 1})

	if len(written) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(written))
	}
	for _, a := range written {
		if a.UserID == 1 {
			t.Fatalf("commenter must not be alerted: %+v", a)
		}
	}
}

func TestAlertServiceFanoutFailureDoesNotPanic(t *testing.T) {
	social := noopSocialRepo()
	social.listFollowerIDsFn = func(context.Context, uint) ([]uint, error) {
		return nil, models.NewInternalError(context.DeadlineExceeded)
	}

	svc := NewAlertService(noopAlertRepo(), social, noopThreadRepo(), nil)
	// Fan-out is void; a repo failure only logs.
	svc.ReviewPosted(context.Background(), 1, &models.Review{ID: 10, UserID: 1, BookID: 20})
	svc.ThreadCreated(context.Background(), 1, &models.Thread{ID: 40, UserID: 1})
}
