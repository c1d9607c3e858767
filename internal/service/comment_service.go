package service

import (
	"context"

	"dwitter/internal/authz"
	"dwitter/internal/models"
	"dwitter/internal/observability"
	"dwitter/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

type CommentService struct {
	commentRepo repository.CommentRepository
}

type DeleteCommentInput struct {
	Principal authz.Principal
	CommentID uint
}

func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *CommentService) ListComments(ctx context.Context, filter repository.CommentFilter) ([]*models.Comment, error) {
	return s.commentRepo.List(ctx, filter)
}

// DeleteComment removes a comment if the principal authored it or is a moderator.
// The parent dweet is never touched.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) (res *DeleteResult, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.DeleteComment",
		attribute.Int64("comment.id", int64(in.CommentID)),
		attribute.String("principal.kind", in.Principal.Kind.String()),
	)
	defer func() { observability.EndSpan(span, err) }()

	var comment *models.Comment
	decision, err := authorizeDelete(ctx, models.KindComment, in.CommentID, in.Principal, func() (authz.Owned, error) {
		c, loadErr := s.commentRepo.GetByID(ctx, in.CommentID)
		if loadErr != nil {
			return nil, loadErr
		}
		comment = c
		return c, nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.commentRepo.Delete(ctx, in.CommentID); err != nil {
		return nil, err
	}

	return &DeleteResult{
		ResourceID: comment.ID,
		AuthorID:   comment.AuthorID,
		ParentID:   comment.ReplyToID,
		Decision:   decision,
	}, nil
}
