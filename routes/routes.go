package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/dan-yates1/umg-project/authentication"
	authControllers "github.com/dan-yates1/umg-project/authentication/controllers"
	"github.com/dan-yates1/umg-project/authentication/middleware"
	"github.com/dan-yates1/umg-project/config"
	"github.com/dan-yates1/umg-project/handlers"
	"github.com/dan-yates1/umg-project/internal/logging"
)

// SetupRoutes registers the middleware stack and every route on the app.
func SetupRoutes(app *fiber.App, auth *authControllers.AuthController, tracks *handlers.TrackHandler, resolver authentication.Resolver, cfg config.Config, log zerolog.Logger) {
	app.Use(recover.New())
	app.Use(logging.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigin,
		AllowCredentials: true,
	}))
	app.Use(limiter.New(limiter.Config{Max: 100}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)
	app.Post("/logout", middleware.RequireAuth(resolver), auth.Logout)

	api := app.Group("/api", middleware.RequireAuth(resolver))
	api.Get("/user", auth.Me)
	api.Get("/tracks", tracks.List)
	api.Post("/tracks", tracks.Create)
	api.Get("/tracks/search", tracks.Search)
	api.Put("/tracks/:id", tracks.Update)
	api.Delete("/tracks/:id", tracks.Delete)
}
