package api

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the TeleTrack API client.
type Config struct {
	BaseURL    string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults for a locally
// served API.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "http://localhost:3000",
		TimeoutMs:  10000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads client configuration from the environment, falling
// back to defaults for any unset value. A .env file in the working
// directory is loaded first when present; real environment variables
// win over it.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if v := os.Getenv("TELETRACK_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TELETRACK_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TELETRACK_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("TELETRACK_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
