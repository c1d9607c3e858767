package server

import (
	"context"

	"dwitter/internal/authz"
	"dwitter/internal/notifications"
	"dwitter/internal/service"
)

type deletionEvent struct {
	eventType string
	idKey     string
}

var (
	eventDweetDeleted   = deletionEvent{notifications.EventDweetDeleted, "dweet_id"}
	eventCommentDeleted = deletionEvent{notifications.EventCommentDeleted, "comment_id"}
)

// publishDeletion broadcasts a completed delete. When a moderator removed
// someone else's content the author is also told directly.
func (s *Server) publishDeletion(ctx context.Context, ev deletionEvent, principal authz.Principal, res *service.DeleteResult) {
	payload := map[string]any{
		ev.idKey:     res.ResourceID,
		"author_id":  res.AuthorID,
		"deleted_by": principal.UserID,
		"decision":   res.Decision.String(),
	}
	if res.ParentID != 0 {
		payload["dweet_id"] = res.ParentID
	}

	s.notifier.Broadcast(ctx, notifications.Event{Type: ev.eventType, Payload: payload})

	if res.Decision == authz.AllowModerator {
		s.notifier.NotifyUser(ctx, res.AuthorID, notifications.Event{
			Type:    notifications.EventContentRemoved,
			Payload: payload,
		})
	}
}
