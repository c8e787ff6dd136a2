package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings for the server
type Config struct {
	NBPBaseURL  string
	HTTPTimeout time.Duration
	HTTPHost    string
	HTTPPort    string
	LogLevel    string
}

// Load reads configuration from the environment, with a best-effort .env
// file load for local development.
func Load() *Config {
	// Missing .env is fine in production; real env vars take precedence
	_ = godotenv.Load()

	timeout := 30
	if v := os.Getenv("NBP_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = n
		}
	}

	return &Config{
		NBPBaseURL:  getEnv("NBP_API_BASE_URL", "https://api.nbp.pl/api"),
		HTTPTimeout: time.Duration(timeout) * time.Second,
		HTTPHost:    getEnv("MCP_HTTP_HOST", "0.0.0.0"),
		HTTPPort:    getEnv("MCP_HTTP_PORT", "8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
