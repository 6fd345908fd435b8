// Package service contains the application's business logic, free of any
// transport concerns.
package service

import (
	"context"
	"log/slog"

	"bookery/internal/middleware"
	"bookery/internal/models"
	"bookery/internal/notify"
	"bookery/internal/observability"
	"bookery/internal/repository"
)

// AlertService computes fan-out audiences and writes alert rows.
//
// Every fan-out method is best-effort: delivery errors are logged and counted
// but never returned, so a failed alert batch can never fail the write that
// triggered it. The audience is whatever the follow tables contain at call
// time; users who follow later get nothing retroactively.
type AlertService struct {
	alertRepo  repository.AlertRepository
	socialRepo repository.SocialRepository
	threadRepo repository.ThreadRepository
	notifier   *notify.Notifier
}

// NewAlertService returns a new AlertService. notifier may be nil.
func NewAlertService(
	alertRepo repository.AlertRepository,
	socialRepo repository.SocialRepository,
	threadRepo repository.ThreadRepository,
	notifier *notify.Notifier,
) *AlertService {
	return &AlertService{
		alertRepo:  alertRepo,
		socialRepo: socialRepo,
		threadRepo: threadRepo,
		notifier:   notifier,
	}
}

// ReviewPosted notifies the actor's followers that they posted or updated a review.
func (s *AlertService) ReviewPosted(ctx context.Context, actorID uint, review *models.Review) {
	audience, err := s.socialRepo.ListFollowerIDs(ctx, actorID)
	if err != nil {
		s.logFanoutFailure(ctx, models.AlertFollowingReviewed, err)
		return
	}
	alerts := make([]models.Alert, 0, len(audience))
	for _, recipientID := range audience {
		if recipientID == actorID {
			continue
		}
		alerts = append(alerts, models.Alert{
			UserID:   recipientID,
			ActorID:  actorID,
			Type:     models.AlertFollowingReviewed,
			ReviewID: &review.ID,
			BookID:   &review.BookID,
		})
	}
	s.deliver(ctx, models.AlertFollowingReviewed, alerts)
}

// ReviewCommented notifies the actor's followers, and the review owner when
// someone else comments on their review. A follower who also owns the review
// receives one alert per event, as the events are distinct.
func (s *AlertService) ReviewCommented(ctx context.Context, actorID uint, review *models.Review, comment *models.ReviewComment) {
	audience, err := s.socialRepo.ListFollowerIDs(ctx, actorID)
	if err != nil {
		s.logFanoutFailure(ctx, models.AlertFollowingCommented, err)
	} else {
		alerts := make([]models.Alert, 0, len(audience))
		for _, recipientID := range audience {
			if recipientID == actorID {
				continue
			}
			alerts = append(alerts, models.Alert{
				UserID:          recipientID,
				ActorID:         actorID,
				Type:            models.AlertFollowingCommented,
				ReviewID:        &review.ID,
				ReviewCommentID: &comment.ID,
				BookID:          &review.BookID,
			})
		}
		s.deliver(ctx, models.AlertFollowingCommented, alerts)
	}

	// Self-notification is suppressed: commenting on your own review alerts nobody.
	if review.UserID == actorID {
		return
	}
	s.deliver(ctx, models.AlertCommentOnYourReview, []models.Alert{{
		UserID:          review.UserID,
		ActorID:         actorID,
		Type:            models.AlertCommentOnYourReview,
		ReviewID:        &review.ID,
		ReviewCommentID: &comment.ID,
		BookID:          &review.BookID,
	}})
}

// ThreadCommented notifies every follower of the thread except the commenter.
func (s *AlertService) ThreadCommented(ctx context.Context, actorID uint, threadID uint, comment *models.ThreadComment) {
	audience, err := s.threadRepo.ListFollowerIDs(ctx, threadID)
	if err != nil {
		s.logFanoutFailure(ctx, models.AlertThreadComment, err)
		return
	}
	alerts := make([]models.Alert, 0, len(audience))
	for _, recipientID := range audience {
		if recipientID == actorID {
			continue
		}
		alerts = append(alerts, models.Alert{
			UserID:          recipientID,
			ActorID:         actorID,
			Type:            models.AlertThreadComment,
			ThreadID:        &threadID,
			ThreadCommentID: &comment.ID,
		})
	}
	s.deliver(ctx, models.AlertThreadComment, alerts)
}

// ThreadCreated notifies the actor's followers about their new thread. The
// author's auto-follow on the thread never produces a self-alert because the
// audience here is the user-follow graph, not the thread-follow table.
func (s *AlertService) ThreadCreated(ctx context.Context, actorID uint, thread *models.Thread) {
	audience, err := s.socialRepo.ListFollowerIDs(ctx, actorID)
	if err != nil {
		s.logFanoutFailure(ctx, models.AlertFollowedUserThread, err)
		return
	}
	alerts := make([]models.Alert, 0, len(audience))
	for _, recipientID := range audience {
		if recipientID == actorID {
			continue
		}
		alerts = append(alerts, models.Alert{
			UserID:   recipientID,
			ActorID:  actorID,
			Type:     models.AlertFollowedUserThread,
			ThreadID: &thread.ID,
		})
	}
	s.deliver(ctx, models.AlertFollowedUserThread, alerts)
}

func (s *AlertService) deliver(ctx context.Context, alertType models.AlertType, alerts []models.Alert) {
	if len(alerts) == 0 {
		return
	}
	if err := s.alertRepo.CreateBatch(ctx, alerts); err != nil {
		s.logFanoutFailure(ctx, alertType, err)
		return
	}
	observability.AlertFanoutTotal.WithLabelValues(string(alertType)).Add(float64(len(alerts)))

	if s.notifier == nil {
		return
	}
	for i := range alerts {
		if err := s.notifier.PublishAlert(ctx, &alerts[i]); err != nil {
			middleware.Logger.WarnContext(ctx, "alert publish failed",
				slog.String("type", string(alertType)),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *AlertService) logFanoutFailure(ctx context.Context, alertType models.AlertType, err error) {
	observability.AlertFanoutFailures.WithLabelValues(string(alertType)).Inc()
	middleware.Logger.ErrorContext(ctx, "alert fan-out failed",
		slog.String("type", string(alertType)),
		slog.String("error", err.Error()),
	)
}

// Alert read-side operations, all scoped to the owning user.

// ListAlerts returns the user's alerts, newest first.
func (s *AlertService) ListAlerts(ctx context.Context, userID uint, limit, offset int) ([]models.Alert, error) {
	return s.alertRepo.ListByUser(ctx, userID, limit, offset)
}

// MarkRead flips one alert to read if it belongs to the user.
func (s *AlertService) MarkRead(ctx context.Context, userID, alertID uint) error {
	return s.alertRepo.MarkRead(ctx, alertID, userID)
}

// MarkAllRead flips all of the user's unread alerts.
func (s *AlertService) MarkAllRead(ctx context.Context, userID uint) error {
	return s.alertRepo.MarkAllRead(ctx, userID)
}

// DeleteAlert removes one alert if it belongs to the user.
func (s *AlertService) DeleteAlert(ctx context.Context, userID, alertID uint) error {
	return s.alertRepo.DeleteForUser(ctx, alertID, userID)
}

// UnreadCount counts the user's unread alerts.
func (s *AlertService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.alertRepo.UnreadCount(ctx, userID)
}
