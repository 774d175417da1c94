// Package config reads service configuration from the environment with
// sensible defaults for a local demo run.
package config

import (
	"os"
	"time"
)

type Config struct {
	// Server
	Addr     string
	LogLevel string

	// Session behavior
	IdleTimeout time.Duration
	LoanDelay   time.Duration

	// Optional path to a seed accounts JSON file; empty means the
	// embedded demo seed.
	SeedPath string
}

func New() *Config {
	return &Config{
		Addr:        getEnv("ADDR", ":8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		IdleTimeout: getEnvAsDuration("IDLE_TIMEOUT", 120*time.Second),
		LoanDelay:   getEnvAsDuration("LOAN_DELAY", 2500*time.Millisecond),
		SeedPath:    getEnv("SEED_PATH", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
