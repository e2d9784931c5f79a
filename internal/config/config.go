// Package config handles application configuration and environment loading.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration for the primer CLI.
type Config struct {
	DBPath       string // path to the SQLite store (default "primer.sqlite")
	LogLevel     string // log level: debug, info, warn, error (default "info")
	Env          string // environment: "development" (default) or "production"
	ReadPoolSize int    // read pool size for the SQLite pair (default 4)

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables.
// All variables are optional; sensible defaults apply.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:   os.Getenv("PRIMER_DB"),
		LogLevel: os.Getenv("PRIMER_LOG_LEVEL"),
		Env:      os.Getenv("PRIMER_ENV"),
	}

	if v := os.Getenv("PRIMER_READ_POOL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReadPoolSize = n
		} else {
			cfg.Warnings = append(cfg.Warnings,
				"PRIMER_READ_POOL_SIZE is not a positive integer — using default")
		}
	}

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "primer.sqlite"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ReadPoolSize == 0 {
		cfg.ReadPoolSize = 4
	}
	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		cfg.Warnings = append(cfg.Warnings,
			"unknown PRIMER_LOG_LEVEL "+strconv.Quote(cfg.LogLevel)+" — falling back to info")
	}

	return cfg, nil
}
