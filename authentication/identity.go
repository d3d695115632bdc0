// Package authentication resolves request credentials into identities.
//
// Two interchangeable resolvers exist: TokenResolver verifies a stateless
// signed bearer token, SessionResolver looks a cookie up in a server-side
// session store. Deployment configuration picks one; the rest of the service
// only sees the Resolver interface.
package authentication

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dan-yates1/umg-project/authentication/sessions"
	"github.com/dan-yates1/umg-project/authentication/util"
	"github.com/dan-yates1/umg-project/domain"
)

// SessionCookie names the cookie carrying the session id in session mode.
const SessionCookie = "session_id"

// TokenCookie names the cookie carrying the access token, the fallback for
// browser clients that cannot set an Authorization header.
const TokenCookie = "jwt"

// Resolver turns a request credential into an Identity, or
// domain.ErrUnauthenticated when the credential is missing or invalid.
type Resolver interface {
	Resolve(c *fiber.Ctx) (domain.Identity, error)
}

// TokenResolver authenticates stateless signed bearer tokens.
type TokenResolver struct {
	Secret string
}

func NewTokenResolver(secret string) *TokenResolver {
	return &TokenResolver{Secret: secret}
}

// Resolve reads the token from the Authorization header ("Bearer <token>"),
// falling back to the token cookie, and verifies it.
func (r *TokenResolver) Resolve(c *fiber.Ctx) (domain.Identity, error) {
	token := ""

	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return domain.Identity{}, domain.ErrUnauthenticated
		}
		token = parts[1]
	} else {
		token = c.Cookies(TokenCookie)
	}

	if token == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	return util.ParseAccessToken(token, r.Secret)
}

// SessionResolver authenticates server-side sessions referenced by cookie.
type SessionResolver struct {
	Store sessions.Store
}

func NewSessionResolver(store sessions.Store) *SessionResolver {
	return &SessionResolver{Store: store}
}

func (r *SessionResolver) Resolve(c *fiber.Ctx) (domain.Identity, error) {
	id := c.Cookies(SessionCookie)
	if id == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return r.Store.Get(c.Context(), id)
}
