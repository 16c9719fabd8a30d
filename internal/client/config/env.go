package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envBaseURL       = "INTERVIEW_API_URL"
	envDatabasePath  = "INTERVIEW_DB_PATH"
	envCheckInterval = "INTERVIEW_ONLINE_CHECK_INTERVAL"
)

// parseEnv overlays Config with values from the process environment. A
// .env file in the working directory is loaded first if present; a missing
// file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
}
