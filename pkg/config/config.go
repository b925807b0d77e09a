// Package config loads application configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds the HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Checkout holds checkout-flow settings. SessionTTL bounds how long the
// surrounding application keeps an idle session around; the state machine
// itself enforces no timeout.
type Checkout struct {
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"300s"`
}

// App is the root configuration.
type App struct {
	Env      string   `envconfig:"ENV" default:"development"`
	Currency string   `envconfig:"CURRENCY" default:"SSP"`
	Server   Server   `envconfig:"SERVER"`
	Checkout Checkout `envconfig:"CHECKOUT"`
}

// Load reads configuration from envFile (when present) and the process
// environment.
func Load(envFile string, logger *slog.Logger) (*App, error) {
	if err := godotenv.Load(envFile); err != nil {
		logger.Warn("no .env file found, using system environment variables")
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("app config loaded",
		"env", cfg.Env,
		"currency", cfg.Currency,
		"session_ttl", cfg.Checkout.SessionTTL,
	)
	return &cfg, nil
}
