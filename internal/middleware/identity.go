package middleware

import (
	"context"

	"inkwell/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// Identity attaches the caller's authenticated identity to the request when
// the Authorization header carries a valid token. A missing or invalid token
// leaves the request anonymous; it never produces an error response. Handlers
// that require authentication check for the identity themselves.
func Identity(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := tokens.ResolveIdentity(c.Get(fiber.HeaderAuthorization)); ok {
			c.Locals("userID", id)
			c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, id))
		}
		return c.Next()
	}
}

// CurrentUserID returns the authenticated user id for the request, or 0 when
// the request is anonymous.
func CurrentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}
