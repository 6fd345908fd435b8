// Package notify publishes alert events into Redis channels so future
// realtime consumers can deliver them without polling.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"bookery/internal/models"

	"github.com/redis/go-redis/v9"
)

// Notifier provides helpers to publish alert events into Redis channels.
// All publishes are best-effort: a nil client or a publish error never
// affects the triggering request.
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier creates a new Notifier instance using the provided Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// alertEvent is the wire shape published per recipient.
type alertEvent struct {
	Type    models.AlertType `json:"type"`
	ActorID uint             `json:"actor_id"`
	AlertID uint             `json:"alert_id"`
}

// PublishAlert sends a freshly written alert to its recipient's channel.
func (n *Notifier) PublishAlert(ctx context.Context, alert *models.Alert) error {
	if n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(alertEvent{
		Type:    alert.Type,
		ActorID: alert.ActorID,
		AlertID: alert.ID,
	})
	if err != nil {
		return err
	}
	channel := fmt.Sprintf("alerts:user:%d", alert.UserID)
	return n.rdb.Publish(ctx, channel, payload).Err()
}
