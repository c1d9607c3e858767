// Package notifications publishes realtime events into Redis channels.
package notifications

import (
	"context"
	"runtime/debug"
	"strconv"

	"dwitter/internal/observability"

	"github.com/redis/go-redis/v9"
)

// BroadcastChannel carries events every client receives.
const BroadcastChannel = "notifications:broadcast"

// Notifier provides helpers to publish notifications into Redis channels.
// A Notifier built without a client is a no-op.
type Notifier struct {
	rdb *redis.Client
}

func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishUser sends a notification payload to a user's channel.
func (n *Notifier) PublishUser(ctx context.Context, userID uint, payload string) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, UserChannel(userID), payload).Err()
}

// PublishBroadcast sends a notification payload to all connected users.
func (n *Notifier) PublishBroadcast(ctx context.Context, payload string) error {
	if n == nil || n.rdb == nil {
		return nil
	}
	return n.rdb.Publish(ctx, BroadcastChannel, payload).Err()
}

// Subscribe listens on the broadcast channel and the given users' channels
// until ctx is cancelled, calling onMessage for each payload.
func (n *Notifier) Subscribe(ctx context.Context, onMessage func(channel, payload string), userIDs ...uint) error {
	if n == nil || n.rdb == nil {
		return nil
	}

	channels := []string{BroadcastChannel}
	for _, id := range userIDs {
		channels = append(channels, UserChannel(id))
	}
	sub := n.rdb.Subscribe(ctx, channels...)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return err
	}
	ch := sub.Channel()

	go func() {
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				func() {
					defer func() {
						if r := recover(); r != nil {
							observability.Logger.Error("panic in notification subscriber",
								"panic", r, "stack", string(debug.Stack()))
						}
					}()
					onMessage(msg.Channel, msg.Payload)
				}()
			}
		}
	}()

	return nil
}

// UserChannel derives the Redis channel name for a user.
func UserChannel(userID uint) string {
	return "notifications:user:" + strconv.FormatUint(uint64(userID), 10)
}
