// Package config provides environment-driven configuration for the gridpath
// server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds all server configuration values.
type Config struct {
	Port        string
	ListenHost  string
	LogLevel    string
	LogFormat   string
	CacheSize   int
	DBPath      string
	StreamDelay time.Duration
	Workers     int
}

// Load reads configuration from GRIDPATH_* environment variables with
// sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:       envOrDefault("GRIDPATH_PORT", "8080"),
		ListenHost: envOrDefault("GRIDPATH_LISTEN_HOST", "127.0.0.1"),
		LogLevel:   envOrDefault("GRIDPATH_LOG_LEVEL", "info"),
		LogFormat:  envOrDefault("GRIDPATH_LOG_FORMAT", "text"),
		DBPath:     envOrDefault("GRIDPATH_DB_PATH", ""),
	}

	cacheSize, err := strconv.Atoi(envOrDefault("GRIDPATH_CACHE_SIZE", "256"))
	if err != nil || cacheSize < 1 || cacheSize > 1<<20 {
		return nil, fmt.Errorf("GRIDPATH_CACHE_SIZE must be an integer between 1 and %d", 1<<20)
	}
	cfg.CacheSize = cacheSize

	workers, err := strconv.Atoi(envOrDefault("GRIDPATH_WORKERS", "4"))
	if err != nil || workers < 1 || workers > 64 {
		return nil, fmt.Errorf("GRIDPATH_WORKERS must be an integer between 1 and 64")
	}
	cfg.Workers = workers

	delay, err := time.ParseDuration(envOrDefault("GRIDPATH_STREAM_DELAY", "25ms"))
	if err != nil {
		return nil, fmt.Errorf("GRIDPATH_STREAM_DELAY must be a duration: %w", err)
	}
	cfg.StreamDelay = delay

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// Logger builds a logrus logger from LogLevel and LogFormat.
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("GRIDPATH_PORT must be a valid integer: %w", err)
	}
	if port < 0 || port > 65535 {
		return fmt.Errorf("GRIDPATH_PORT must be between 0 and 65535")
	}
	if c.ListenHost == "" {
		return fmt.Errorf("GRIDPATH_LISTEN_HOST must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("GRIDPATH_LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("GRIDPATH_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.StreamDelay < 0 {
		return fmt.Errorf("GRIDPATH_STREAM_DELAY must not be negative")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
