package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/dan-yates1/umg-project/authentication"
	authControllers "github.com/dan-yates1/umg-project/authentication/controllers"
	"github.com/dan-yates1/umg-project/authentication/sessions"
	"github.com/dan-yates1/umg-project/config"
	"github.com/dan-yates1/umg-project/database"
	"github.com/dan-yates1/umg-project/handlers"
	"github.com/dan-yates1/umg-project/internal/logging"
	"github.com/dan-yates1/umg-project/repositories"
	"github.com/dan-yates1/umg-project/routes"
)

func main() {
	log := logging.New()

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.AuthMode == config.AuthModeToken && cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set in the environment")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("database connection opened")

	userStore := repositories.NewGormUserStore(db)
	trackStore := repositories.NewGormTrackStore(db)

	// Session mode keeps login state in Redis; token mode needs neither Redis
	// nor a session store.
	var (
		sessionStore sessions.Store
		resolver     authentication.Resolver
	)
	if cfg.AuthMode == config.AuthModeSession {
		rdb, err := database.ConnectRedis(context.Background(), cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		sessionStore = sessions.NewRedisStore(rdb)
		resolver = authentication.NewSessionResolver(sessionStore)
	} else {
		resolver = authentication.NewTokenResolver(cfg.JWTSecret)
	}

	auth := authControllers.NewAuthController(userStore, sessionStore, cfg, log)
	tracks := handlers.NewTrackHandler(trackStore, log)

	app := fiber.New()
	routes.SetupRoutes(app, auth, tracks, resolver, cfg, log)

	log.Info().Str("addr", cfg.ListenAddr).Str("auth_mode", cfg.AuthMode).Msg("starting server")
	if err := app.Listen(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
