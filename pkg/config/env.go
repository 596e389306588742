// Package config provides small helpers for reading configuration from
// environment variables with defaults. Invalid values fall back to the
// default and log a warning rather than failing startup.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the value of an environment variable, or the
// default when unset or empty.
func GetEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt returns an environment variable parsed as an integer.
// Unset, empty, or unparseable values fall back to the default.
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvBool returns an environment variable parsed as a boolean
// (strconv.ParseBool syntax). Unset or invalid values fall back to the
// default.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}
	return value
}

// GetEnvDuration returns an environment variable parsed by
// time.ParseDuration (e.g. "30s", "24h"). Unset or invalid values fall
// back to the default.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue.String()))
		return defaultValue
	}
	return value
}
