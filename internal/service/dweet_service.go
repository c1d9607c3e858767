package service

import (
	"context"

	"dwitter/internal/authz"
	"dwitter/internal/models"
	"dwitter/internal/observability"
	"dwitter/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

type DweetService struct {
	dweetRepo repository.DweetRepository
}

type DeleteDweetInput struct {
	Principal authz.Principal
	DweetID   uint
}

// DeleteResult describes a completed removal.
type DeleteResult struct {
	ResourceID uint
	AuthorID   uint
	ParentID   uint
	Decision   authz.Decision
}

func NewDweetService(dweetRepo repository.DweetRepository) *DweetService {
	return &DweetService{dweetRepo: dweetRepo}
}

func (s *DweetService) GetDweet(ctx context.Context, id uint) (*models.Dweet, error) {
	return s.dweetRepo.GetByID(ctx, id)
}

func (s *DweetService) ListDweets(ctx context.Context, limit, offset int) ([]*models.Dweet, error) {
	return s.dweetRepo.List(ctx, limit, offset)
}

// DeleteDweet removes a dweet, and its comments, if the principal authored it or is a moderator.
func (s *DweetService) DeleteDweet(ctx context.Context, in DeleteDweetInput) (res *DeleteResult, err error) {
	ctx, span := observability.StartSpan(ctx, "DweetService.DeleteDweet",
		attribute.Int64("dweet.id", int64(in.DweetID)),
		attribute.String("principal.kind", in.Principal.Kind.String()),
	)
	defer func() { observability.EndSpan(span, err) }()

	var dweet *models.Dweet
	decision, err := authorizeDelete(ctx, models.KindDweet, in.DweetID, in.Principal, func() (authz.Owned, error) {
		d, loadErr := s.dweetRepo.GetByID(ctx, in.DweetID)
		if loadErr != nil {
			return nil, loadErr
		}
		dweet = d
		return d, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.dweetRepo.Delete(ctx, in.DweetID); err != nil {
		return nil, err
	}

	return &DeleteResult{
		ResourceID: dweet.ID,
		AuthorID:   dweet.AuthorID,
		Decision:   decision,
	}, nil
}
