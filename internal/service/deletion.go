package service

import (
	"context"
	"log/slog"

	"dwitter/internal/authz"
	"dwitter/internal/models"
	"dwitter/internal/observability"
)

// authorizeDelete applies the removal policy for one resource. Anonymous
// principals are rejected before load runs, so they learn nothing about
// which IDs exist. load must return a NOT_FOUND AppError for missing IDs.
func authorizeDelete(
	ctx context.Context,
	kind models.ResourceKind,
	id uint,
	principal authz.Principal,
	load func() (authz.Owned, error),
) (authz.Decision, error) {
	if !principal.Authenticated() {
		logDenied(ctx, kind, id, principal)
		return authz.Deny, models.NewForbiddenError("Authentication credentials were not provided.")
	}

	resource, err := load()
	if err != nil {
		if models.IsNotFound(err) {
			observability.RecordDeleteDecision(string(kind), "not_found")
		}
		return authz.Deny, err
	}

	decision := authz.Decide(principal, resource)
	if !decision.Permitted() {
		logDenied(ctx, kind, id, principal)
		return decision, models.NewForbiddenError("You do not have permission to perform this action.")
	}

	observability.RecordDeleteDecision(string(kind), decision.String())
	return decision, nil
}

func logDenied(ctx context.Context, kind models.ResourceKind, id uint, principal authz.Principal) {
	observability.RecordDeleteDecision(string(kind), authz.Deny.String())
	observability.Logger.InfoContext(ctx, "delete denied",
		slog.String("kind", string(kind)),
		slog.Uint64("resource_id", uint64(id)),
		slog.String("principal", principal.Kind.String()),
		slog.Uint64("principal_id", uint64(principal.UserID)),
	)
}
