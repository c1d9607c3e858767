package notifications

import (
	"context"
	"encoding/json"
	"log/slog"

	"dwitter/internal/observability"
)

// Event type constants prevent typos in event names.
const (
	EventDweetDeleted   = "dweet_deleted"
	EventCommentDeleted = "comment_deleted"
	EventContentRemoved = "content_removed"
)

// Event is the envelope written to every channel.
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

// Broadcast publishes ev to every client. Failures are logged and counted,
// never returned: a committed delete must not fail because Redis is down.
func (n *Notifier) Broadcast(ctx context.Context, ev Event) {
	n.publish(ctx, ev, func(msg string) error { return n.PublishBroadcast(ctx, msg) })
}

// NotifyUser publishes ev on one user's channel with the same semantics as Broadcast.
func (n *Notifier) NotifyUser(ctx context.Context, userID uint, ev Event) {
	n.publish(ctx, ev, func(msg string) error { return n.PublishUser(ctx, userID, msg) })
}

func (n *Notifier) publish(ctx context.Context, ev Event, send func(string) error) {
	if n == nil || n.rdb == nil {
		observability.EventsPublished.WithLabelValues(ev.Type, "skipped").Inc()
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		observability.EventsPublished.WithLabelValues(ev.Type, "error").Inc()
		observability.Logger.ErrorContext(ctx, "failed to marshal event", slog.String("type", ev.Type), slog.Any("error", err))
		return
	}
	if err := send(string(body)); err != nil {
		observability.EventsPublished.WithLabelValues(ev.Type, "error").Inc()
		observability.Logger.WarnContext(ctx, "failed to publish event", slog.String("type", ev.Type), slog.Any("error", err))
		return
	}
	observability.EventsPublished.WithLabelValues(ev.Type, "ok").Inc()
}
