package server

import (
	"dwitter/internal/middleware"
	"dwitter/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoginRequest accepts form or JSON credentials.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary Obtain an API token
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body LoginRequest true "Username and password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api-token-auth/ [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	token, _, err := s.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(TokenResponse{Token: token})
}

// RevokeToken godoc
// @Summary Revoke the presented API token
// @Tags auth
// @Security TokenAuth
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Failure 503 {object} models.ErrorResponse
// @Router /api-token-auth/revoke/ [post]
func (s *Server) RevokeToken(c *fiber.Ctx) error {
	if !middleware.PrincipalFrom(c).Authenticated() {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Authentication credentials were not provided."))
	}

	token := middleware.TokenFromHeader(c.Get(fiber.HeaderAuthorization))
	if err := s.authService.Revoke(c.UserContext(), token); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
