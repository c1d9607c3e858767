package server

import (
	"dwitter/internal/middleware"
	"dwitter/internal/repository"
	"dwitter/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments godoc
// @Summary List comments, oldest first
// @Tags comments
// @Produce json
// @Param reply_to query int false "Only comments on this dweet"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset"
// @Success 200 {array} models.Comment
// @Router /comments/ [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPaginationLimit)

	replyTo := c.QueryInt("reply_to", 0)
	if replyTo < 0 {
		replyTo = 0
	}

	comments, err := s.commentService.ListComments(c.UserContext(), repository.CommentFilter{
		ReplyTo: uint(replyTo),
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comments)
}

// GetComment godoc
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Comment
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id}/ [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(comment)
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Allowed for the author and for moderators.
// @Tags comments
// @Security TokenAuth
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /comments/{id}/ [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	principal := middleware.PrincipalFrom(c)
	res, err := s.commentService.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		Principal: principal,
		CommentID: id,
	})
	if err != nil {
		return respondError(c, err)
	}

	s.publishDeletion(c.UserContext(), eventCommentDeleted, principal, res)
	return c.SendStatus(fiber.StatusNoContent)
}
