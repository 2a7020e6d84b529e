// Package config handles application configuration via environment variables.
// It uses kelseyhightower/envconfig for parsing and provides sensible defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"choicefetch/src/core/domain"
)

// Config holds all application configuration.
// Values are loaded from environment variables with the prefix "APP",
// except the connection string which is read from DSN.
// Example: DSN=postgres://..., APP_PORT=8080, APP_LOG_LEVEL=debug
type Config struct {
	// Server configuration (embedded to flatten env vars)
	Server ServerConfig

	// Database configuration, read without prefix
	Database DatabaseConfig

	// Client configuration for the choices worker
	Client ClientConfig

	// Logging configuration (embedded to flatten env vars)
	Log LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP server port (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// Host is the HTTP server host (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// ReadTimeout is the maximum duration for reading the entire request (default: 10s)
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`

	// WriteTimeout is the maximum duration before timing out writes of the response (default: 30s)
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`

	// ShutdownTimeout bounds HTTP shutdown and worker draining (default: 30s)
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds the connection string. Pool sizing is fixed in package db.
type DatabaseConfig struct {
	// DSN is the connection string: postgres://, postgresql://, sqlite:// or file:
	DSN string `envconfig:"DSN" required:"true"`

	// ConnectTimeout bounds pool construction and the startup ping (default: 10s)
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
}

// ClientConfig holds settings for the choices client and its worker.
type ClientConfig struct {
	// ChoicesQuery is the statement served by /v1/choices and the choices command
	ChoicesQuery string `envconfig:"CHOICES_QUERY" default:"SELECT sku, description FROM products"`

	// QueueCapacity is the request queue size (default: 4)
	QueueCapacity int `envconfig:"QUEUE_CAPACITY" default:"4"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is the log level: debug, info, warn, error (default: info)
	Level string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the log format: plain, text, json (default: plain)
	Format string `envconfig:"LOG_FORMAT" default:"plain"`

	// File, when set, also writes logs to a rotating file at this path
	File string `envconfig:"LOG_FILE"`

	// FileMaxSizeMB is the size at which the log file is rotated (default: 50)
	FileMaxSizeMB int `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"50"`

	// FileMaxBackups is the number of rotated files kept (default: 3)
	FileMaxBackups int `envconfig:"LOG_FILE_MAX_BACKUPS" default:"3"`
}

// Addr returns the server address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Query returns the configured choices statement.
func (c *ClientConfig) Query() domain.Query {
	return domain.Query(c.ChoicesQuery)
}

// Load reads configuration from environment variables.
// A missing DSN is reported as domain.ErrConfiguration.
func Load() (*Config, error) {
	var cfg Config

	// Load each config section separately to flatten env var names
	// This allows env vars like APP_PORT instead of APP_SERVER_PORT
	if err := envconfig.Process("APP", &cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := envconfig.Process("", &cfg.Database); err != nil {
		return nil, domain.NewConfigurationError("failed to load database config", err)
	}
	if err := envconfig.Process("APP", &cfg.Client); err != nil {
		return nil, fmt.Errorf("failed to load client config: %w", err)
	}
	if err := envconfig.Process("APP", &cfg.Log); err != nil {
		return nil, fmt.Errorf("failed to load log config: %w", err)
	}

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, domain.NewConfigurationError("DSN is empty", nil)
	}
	if cfg.Client.QueueCapacity < 1 {
		return nil, domain.NewConfigurationError(
			fmt.Sprintf("APP_QUEUE_CAPACITY must be positive, got %d", cfg.Client.QueueCapacity), nil)
	}

	return &cfg, nil
}
