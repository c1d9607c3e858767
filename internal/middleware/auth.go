package middleware

import (
	"context"
	"strings"

	"dwitter/internal/authz"
	"dwitter/internal/models"
	"dwitter/internal/observability"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// PrincipalResolver turns a raw token into the acting principal.
type PrincipalResolver interface {
	Principal(ctx context.Context, token string) (authz.Principal, error)
}

// TokenFromHeader extracts the token from "Token <t>" or "Bearer <t>".
// Any other shape yields "".
func TokenFromHeader(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "token", "bearer":
		return strings.TrimSpace(token)
	}
	return ""
}

// Authenticate resolves the caller's principal and stores it in locals.
// It never rejects: routes decide what an anonymous principal may do.
func Authenticate(resolver PrincipalResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromHeader(c.Get(fiber.HeaderAuthorization))

		principal, err := resolver.Principal(c.UserContext(), token)
		if err != nil {
			observability.Logger.ErrorContext(c.UserContext(), "principal lookup failed", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
		}

		c.Locals(principalKey, principal)
		if principal.Authenticated() {
			c.Locals("userID", principal.UserID)
			c.SetUserContext(observability.WithUserID(c.UserContext(), principal.UserID))
		}
		return c.Next()
	}
}

// PrincipalFrom returns the principal stored by Authenticate, or anonymous.
func PrincipalFrom(c *fiber.Ctx) authz.Principal {
	if p, ok := c.Locals(principalKey).(authz.Principal); ok {
		return p
	}
	return authz.AnonymousPrincipal()
}
