// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables and an optional .env file. It provides a centralized Config struct
// used across the application.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// DefaultAllowedOrigins lists the deployed frontends permitted to call the
// API from a browser.
var DefaultAllowedOrigins = []string{
	"https://funfactgenerator123.netlify.app",
	"https://funfactgenerator456.netlify.app",
	"https://cardgenerator123.netlify.app",
}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string

	// Gemini upstream
	GeminiKey        string
	GeminiModel      string
	GeminiBaseURL    string
	GeminiAPIVersion string
	UpstreamTimeout  time.Duration // zero keeps the transport default

	// Browser access
	AllowedOrigins []string

	// StaticDir overrides the embedded frontend with files from disk.
	StaticDir string
}

// Load reads configuration from environment variables, applying defaults
// where appropriate. Values from a .env file in the working directory are
// loaded first but never override variables already set in the process.
//
// A missing Gemini key is not an error here: the server still starts and
// every fact request fails until the key is provided.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "3000"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		GeminiKey:        lo.CoalesceOrEmpty(os.Getenv("API_KEY"), os.Getenv("GEMINI_API_KEY")),
		GeminiModel:      envOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL:    envOrDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIVersion: envOrDefault("GEMINI_API_VERSION", "v1"),

		AllowedOrigins: slices.Clone(DefaultAllowedOrigins),
		StaticDir:      os.Getenv("STATIC_DIR"),
	}

	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("UPSTREAM_TIMEOUT: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("UPSTREAM_TIMEOUT must not be negative, got %s", d)
		}
		cfg.UpstreamTimeout = d
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		cfg.AllowedOrigins = splitList(raw)
	}

	if cfg.GeminiKey == "" {
		slog.Warn("API_KEY is not set; fact requests will fail until it is provided")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel maps LogLevel onto a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// ParseLevel converts a textual log level into a slog.Level.
// Unknown values fall back to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(raw string) []string {
	items := lo.Map(strings.Split(raw, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Compact(items)
}
