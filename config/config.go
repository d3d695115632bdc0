// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
)

// Auth modes selectable via AUTH_MODE.
const (
	AuthModeToken   = "token"
	AuthModeSession = "session"
)

// Config carries everything main needs to wire the service.
type Config struct {
	ListenAddr string

	// DBDriver is "postgres" or "sqlite". The sqlite driver needs no running
	// database and is the default for local development and tests.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// AuthMode selects the identity resolver: "token" for stateless bearer
	// tokens, "session" for Redis-backed cookie sessions.
	AuthMode         string
	JWTSecret        string
	TokenExpiryHours int

	CORSOrigin string
}

// Load reads the configuration from the environment. Call godotenv.Load
// beforehand if a .env file should be honored.
func Load() Config {
	return Config{
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),

		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "umg"),
		SQLitePath: getenv("SQLITE_PATH", "app.db"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getint("REDIS_DB", 0),

		AuthMode:         getenv("AUTH_MODE", AuthModeToken),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		TokenExpiryHours: getint("TOKEN_EXPIRY_HOURS", 24),

		CORSOrigin: getenv("CORS_ORIGIN", "http://localhost:8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
