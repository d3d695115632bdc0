package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/dan-yates1/umg-project/authentication"
	"github.com/dan-yates1/umg-project/authentication/middleware"
	"github.com/dan-yates1/umg-project/authentication/sessions"
	"github.com/dan-yates1/umg-project/authentication/util"
	"github.com/dan-yates1/umg-project/config"
	"github.com/dan-yates1/umg-project/domain"
	"github.com/dan-yates1/umg-project/models"
	"github.com/dan-yates1/umg-project/repositories"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthController handles registration, login and logout.
//
// Sessions is only consulted in session mode; in token mode logout is a
// client-side affair since bearer tokens are not server-tracked, and the
// handler only clears the token cookie.
type AuthController struct {
	Users    repositories.UserStore
	Sessions sessions.Store
	Cfg      config.Config
	Log      zerolog.Logger
}

func NewAuthController(users repositories.UserStore, store sessions.Store, cfg config.Config, log zerolog.Logger) *AuthController {
	return &AuthController{Users: users, Sessions: store, Cfg: cfg, Log: log}
}

// Register handles POST /register.
func (a *AuthController) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to parse request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "username and password are required"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to hash password")
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to register user"})
	}

	user := models.User{Username: req.Username, PasswordHash: string(hash)}
	if err := a.Users.Create(&user); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: domain.ErrUsernameTaken.Error()})
		}
		a.Log.Error().Err(err).Str("username", req.Username).Msg("failed to create user")
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to register user"})
	}

	a.Log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return c.Status(http.StatusCreated).JSON(domain.MessageResponse{Message: "user registered successfully"})
}

// Login handles POST /login. Unknown usernames and wrong passwords produce
// the same response.
func (a *AuthController) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to parse request body"})
	}

	user, err := a.Users.FindByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			a.Log.Error().Err(err).Msg("login lookup failed")
		}
		return a.unauthorized(c)
	}

	// bcrypt's comparison is constant-time.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return a.unauthorized(c)
	}

	if a.Cfg.AuthMode == config.AuthModeSession {
		return a.loginSession(c, user)
	}
	return a.loginToken(c, user)
}

func (a *AuthController) loginToken(c *fiber.Ctx, user *models.User) error {
	token, err := util.CreateAccessToken(user, a.Cfg.JWTSecret, a.Cfg.TokenExpiryHours)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to create access token")
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to log in"})
	}

	expiry := time.Duration(a.Cfg.TokenExpiryHours) * time.Hour
	c.Cookie(&fiber.Cookie{
		Name:     authentication.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(expiry),
		HTTPOnly: true,
	})

	a.Log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return c.Status(http.StatusOK).JSON(domain.LoginResponse{AccessToken: token, UserID: user.ID})
}

func (a *AuthController) loginSession(c *fiber.Ctx, user *models.User) error {
	ttl := time.Duration(a.Cfg.TokenExpiryHours) * time.Hour
	identity := domain.Identity{UserID: user.ID, Username: user.Username}

	id, err := a.Sessions.Create(c.Context(), identity, ttl)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to create session")
		return c.Status(http.StatusBadRequest).JSON(domain.ErrorResponse{Error: "failed to log in"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     authentication.SessionCookie,
		Value:    id,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
	})

	a.Log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return c.Status(http.StatusOK).JSON(domain.LoginResponse{UserID: user.ID})
}

// Me handles GET /api/user, returning the authenticated user's public shape.
func (a *AuthController) Me(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
	}

	user, err := a.Users.FindByID(identity.UserID)
	if err != nil {
		a.Log.Error().Err(err).Uint("user_id", identity.UserID).Msg("failed to load user")
		return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Error: domain.ErrUnauthenticated.Error()})
	}
	return c.Status(http.StatusOK).JSON(user)
}

// Logout handles POST /logout. In session mode the server-side session is
// deleted; in token mode only the cookie is cleared and the token itself
// stays valid until it expires.
func (a *AuthController) Logout(c *fiber.Ctx) error {
	if a.Cfg.AuthMode == config.AuthModeSession {
		if id := c.Cookies(authentication.SessionCookie); id != "" {
			if err := a.Sessions.Delete(c.Context(), id); err != nil {
				a.Log.Error().Err(err).Msg("failed to delete session")
			}
		}
		a.clearCookie(c, authentication.SessionCookie)
	} else {
		a.clearCookie(c, authentication.TokenCookie)
	}

	if identity, ok := middleware.IdentityFromCtx(c); ok {
		a.Log.Info().Uint("user_id", identity.UserID).Msg("user logged out")
	}
	return c.Status(http.StatusOK).JSON(domain.MessageResponse{Message: "logged out successfully"})
}

func (a *AuthController) unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(domain.ErrorResponse{Error: domain.ErrInvalidCredentials.Error()})
}

func (a *AuthController) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
