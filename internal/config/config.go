// Package config loads service settings from the environment once at
// startup, falling back to defaults suitable for local development.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Addr is the listen address of the API server.
	Addr string

	// FetchTimeout bounds every remote image download.
	FetchTimeout time.Duration

	// MaxBodyBytes caps the size of a posted graph document.
	MaxBodyBytes int64
}

func Load() Config {
	return Config{
		Addr:         getEnv("RASTERFLOW_ADDR", ":8080"),
		FetchTimeout: getDuration("RASTERFLOW_FETCH_TIMEOUT", 15*time.Second),
		MaxBodyBytes: getInt64("RASTERFLOW_MAX_BODY", 1<<20),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
