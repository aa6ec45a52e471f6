package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort matches the port the backend expects the dev server
	// on; Listen scans forward from it when it is taken.
	DefaultPort = 5001
	DefaultHost = "0.0.0.0"
)

// Config holds all configuration for the scraper service.
type Config struct {
	Host     string
	Port     int
	LogLevel string
}

// Load builds a Config from the environment. In development a .env
// file is read first; unset variables fall back to defaults.
func Load() (*Config, error) {
	if IsDevelopment() {
		// missing .env is fine, env vars still apply
		_ = godotenv.Load()
	}

	cfg := &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		LogLevel: "info",
	}

	if v := os.Getenv("SCRAPER_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("SCRAPER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SCRAPER_PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("SCRAPER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}
