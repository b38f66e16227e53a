// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultMaxBodyBytes caps request bodies when MAX_BODY_BYTES is unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Empty unless CORS_ORIGINS is set to a comma-separated list.
	CORSOrigins []string

	// Location is the tariff zone. Naive entry and exit timestamps are read in
	// it, and weekdays and holidays are decided in it. TOLL_TIMEZONE, default UTC.
	Location *time.Location

	// MaxBodyBytes bounds request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MetricsEnabled mounts GET /metrics. Defaults to true.
	MetricsEnabled bool

	// NATSURL enables trip-closed events when set.
	NATSURL string

	// MigrateOnStart applies pending goose migrations at startup. Defaults to true.
	MigrateOnStart bool
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first if present; real
// environment variables win over it.
// Returns an error listing any required variables that are not set and any
// values that do not parse.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(os.Getenv("CORS_ORIGINS")),
		NATSURL:     strings.TrimSpace(os.Getenv("NATS_URL")),
	}

	var missing []string
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var errs []error
	loc, err := time.LoadLocation(getEnv("TOLL_TIMEZONE", "UTC"))
	if err != nil {
		errs = append(errs, fmt.Errorf("TOLL_TIMEZONE: %w", err))
	}
	cfg.Location = loc

	cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", DefaultMaxBodyBytes)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.MetricsEnabled, err = getBool("METRICS_ENABLED", true)
	if err != nil {
		errs = append(errs, err)
	}
	cfg.MigrateOnStart, err = getBool("MIGRATE_ON_START", true)
	if err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: want a positive integer, got %q", key, v)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: want a boolean, got %q", key, v)
	}
	return b, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
