// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// User code generation modes.
const (
	// UserCodeModeFixed assigns the same code to every user, so each
	// create overwrites the last. This is the documented default.
	UserCodeModeFixed = "fixed"

	// UserCodeModeUnique assigns a fresh ULID per user.
	UserCodeModeUnique = "unique"
)

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8000"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// CORS configuration
	// Comma-separated list of allowed origins for the frontend demo
	// (e.g., "http://localhost:3000,https://demo.example.com")
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`

	// Request body size limit in bytes (default 1MB)
	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	// Seed for the telemetry generator. Zero means time-based.
	RandomSeed int64 `env:"RANDOM_SEED" envDefault:"0"`

	// User code generation: "fixed" (every user gets code "aaaaaa") or
	// "unique" (ULID per user).
	UserCodeMode string `env:"USER_CODE_MODE" envDefault:"fixed"`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Load parses environment variables and returns a Config.
// Returns an error if a value cannot be parsed or the user code mode is
// unknown.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.UserCodeMode != UserCodeModeFixed && cfg.UserCodeMode != UserCodeModeUnique {
		return nil, fmt.Errorf("invalid USER_CODE_MODE %q: must be %q or %q",
			cfg.UserCodeMode, UserCodeModeFixed, UserCodeModeUnique)
	}

	return cfg, nil
}
