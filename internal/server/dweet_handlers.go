package server

import (
	"dwitter/internal/middleware"
	"dwitter/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetDweets godoc
// @Summary List dweets, newest first
// @Tags dweets
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset"
// @Success 200 {array} models.Dweet
// @Router /dweets/ [get]
func (s *Server) GetDweets(c *fiber.Ctx) error {
	page := parsePagination(c, defaultPaginationLimit)

	dweets, err := s.dweetService.ListDweets(c.UserContext(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dweets)
}

// GetDweet godoc
// @Summary Get a dweet
// @Tags dweets
// @Produce json
// @Param id path int true "Dweet ID"
// @Success 200 {object} models.Dweet
// @Failure 404 {object} models.ErrorResponse
// @Router /dweets/{id}/ [get]
func (s *Server) GetDweet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	dweet, err := s.dweetService.GetDweet(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dweet)
}

// DeleteDweet godoc
// @Summary Delete a dweet and its comments
// @Description Allowed for the author and for moderators.
// @Tags dweets
// @Security TokenAuth
// @Param id path int true "Dweet ID"
// @Success 204
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /dweets/{id}/ [delete]
func (s *Server) DeleteDweet(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	principal := middleware.PrincipalFrom(c)
	res, err := s.dweetService.DeleteDweet(c.UserContext(), service.DeleteDweetInput{
		Principal: principal,
		DweetID:   id,
	})
	if err != nil {
		return respondError(c, err)
	}

	s.publishDeletion(c.UserContext(), eventDweetDeleted, principal, res)
	return c.SendStatus(fiber.StatusNoContent)
}
