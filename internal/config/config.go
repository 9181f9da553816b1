// Package config loads application configuration from the environment.
//
// Configuration comes from environment variables, with a .env file loaded
// first when present (godotenv) so local development doesn't need a shell
// wrapper. Every value has a sensible default except the GitHub OAuth
// credentials, which have no meaningful default — the server still starts
// without them, but the auth routes will reject logins.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to run.
type Config struct {
	Port           int    // PORT — HTTP listen port
	DBPath         string // DB_PATH — SQLite database file (":memory:" works for tests)
	GitHubClientID string // GITHUB_CLIENT_ID — OAuth app client ID
	GitHubSecret   string // GITHUB_CLIENT_SECRET — OAuth app client secret
	AppURL         string // APP_URL — public base URL, used to build the OAuth callback URL
	FrontendOrigin string // FRONTEND_ORIGIN — allowed CORS origin for the SPA
	LogLevel       slog.Level
}

// CallbackURL is where GitHub redirects after the user authorizes the app.
// It must match the "Authorization callback URL" configured on the OAuth app.
func (c Config) CallbackURL() string {
	return c.AppURL + "/auth/callback"
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (Config, error) {
	// A missing .env is not an error — production sets real env vars.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:         getEnv("DB_PATH", "data/matching.db"),
		GitHubClientID: os.Getenv("GITHUB_CLIENT_ID"),
		GitHubSecret:   os.Getenv("GITHUB_CLIENT_SECRET"),
		AppURL:         getEnv("APP_URL", "http://localhost:8080"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		LogLevel:       parseLevel(getEnv("LOG_LEVEL", "info")),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("config: invalid PORT value %q: %w", os.Getenv("PORT"), err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv returns the value of key, or fallback if unset or empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
