// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Detect   DetectConfig
	Rate     RateLimitConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing a response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`

	// MaxBodyBytes caps request body size for grid payloads (default: 10MB)
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES" default:"10485760"`
}

// DatabaseConfig holds database connection settings for the saved-mapping
// store.
type DatabaseConfig struct {
	// URL is the PostgreSQL connection string (required)
	// Supports both DATABASE_URL and DB_URL env vars for compatibility
	URL string `env:"DATABASE_URL" envAlt:"DB_URL" required:"true"`

	// MaxConns is the maximum number of connections in the pool (default: 20)
	MaxConns int `env:"DB_MAX_CONNS" default:"20"`

	// MinConns is the minimum number of connections to keep open (default: 4)
	MinConns int `env:"DB_MIN_CONNS" default:"4"`

	// MaxConnLifetime is the maximum lifetime of a connection (default: 1h)
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" default:"1h"`

	// MaxConnIdleTime is the maximum idle time before a connection is closed (default: 30m)
	MaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" default:"30m"`
}

// DetectConfig holds defaults for header detection and auto-mapping exposed
// over the API. Core operations still take these as explicit parameters;
// this only sets what the web layer passes in.
type DetectConfig struct {
	// ScanWindow is the number of leading rows scanned for a header (default: 5)
	ScanWindow int `env:"DETECT_SCAN_WINDOW" default:"5"`

	// MapConfidence is the minimum confidence for committing a column
	// assignment (default: 0.8)
	MapConfidence float64 `env:"DETECT_MAP_CONFIDENCE" default:"0.8"`

	// ScanConfidence is the permissive floor used during header scanning
	// (default: 0.7). Must stay below MapConfidence.
	ScanConfidence float64 `env:"DETECT_SCAN_CONFIDENCE" default:"0.7"`

	// MaxGridRows caps how many rows of an uploaded grid are accepted (default: 10000)
	MaxGridRows int `env:"DETECT_MAX_GRID_ROWS" default:"10000"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 100)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"100"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the output format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks configuration consistency. Called by Load after all
// values are populated.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Server.MaxBodyBytes < 1024 {
		return fmt.Errorf("max body bytes %d too small", c.Server.MaxBodyBytes)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("db min conns %d exceeds max conns %d", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Detect.ScanWindow < 1 {
		return fmt.Errorf("detect scan window must be at least 1")
	}
	if c.Detect.MapConfidence <= 0 || c.Detect.MapConfidence > 1 {
		return fmt.Errorf("map confidence %v out of (0,1]", c.Detect.MapConfidence)
	}
	if c.Detect.ScanConfidence <= 0 || c.Detect.ScanConfidence > 1 {
		return fmt.Errorf("scan confidence %v out of (0,1]", c.Detect.ScanConfidence)
	}
	if c.Detect.ScanConfidence > c.Detect.MapConfidence {
		return fmt.Errorf("scan confidence %v must not exceed map confidence %v",
			c.Detect.ScanConfidence, c.Detect.MapConfidence)
	}
	if c.Detect.MaxGridRows < 1 {
		return fmt.Errorf("max grid rows must be at least 1")
	}
	if c.Rate.Enabled && c.Rate.RequestsPerMinute < 1 {
		return fmt.Errorf("rate limit enabled with non-positive requests per minute")
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
