package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is merged in first; its absence is fine.
//
// Recognized variables:
//
//	BLOGSYNC_DATA_DIR         string
//	BLOGSYNC_TIMEOUT          integer seconds
//	BLOGSYNC_CHECK_INTERVAL   integer seconds
//	BLOGSYNC_LOG_LEVEL        debug|info|warn|error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BLOGSYNC_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("BLOGSYNC_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("BLOGSYNC_CHECK_INTERVAL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.OnlineCheckInterval = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("BLOGSYNC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
