package middleware

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dan-yates1/umg-project/authentication"
	"github.com/dan-yates1/umg-project/domain"
)

// IdentityKey is the Locals key the resolved identity is stored under.
const IdentityKey = "identity"

// RequireAuth rejects requests whose credential does not resolve and stores
// the identity in Locals for handlers to read via IdentityFromCtx.
func RequireAuth(resolver authentication.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := resolver.Resolve(c)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
		}

		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by RequireAuth. The boolean is
// false on routes that never went through the middleware.
func IdentityFromCtx(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(IdentityKey).(domain.Identity)
	return identity, ok
}
