package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// from the working directory first when one exists.
//
// Recognized variables:
//
//	FINVIEW_SERVER_URL
//	FINVIEW_REQUEST_TIMEOUT (Go duration, e.g. "15s")
//	FINVIEW_COOKIE_DB
//	FINVIEW_LOG_LEVEL
func parseEnv(cfg *Config) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg.ServerBaseURL = getEnv("FINVIEW_SERVER_URL", cfg.ServerBaseURL)
	cfg.RequestTimeout = getEnvDuration("FINVIEW_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.CookieDBPath = getEnv("FINVIEW_COOKIE_DB", cfg.CookieDBPath)
	cfg.LogLevel = getEnv("FINVIEW_LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
