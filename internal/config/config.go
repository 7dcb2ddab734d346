// Package config loads the preview server configuration from environment
// variables with defaults, optionally overridden from the command line.
// The transform library itself takes no configuration; everything here
// belongs to the outer service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kulaginds/avpix/internal/pixfmt"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig
	Preview PreviewConfig
	Logging LoggingConfig
}

// LoadOptions holds command-line override options
type LoadOptions struct {
	Host     string
	Port     string
	LogLevel string
	Width    int
	Height   int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PreviewConfig holds the frame source configuration
type PreviewConfig struct {
	Width     int
	Height    int
	Format    string
	FPS       int
	ZstdLevel int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables with defaults
func Load() (*Config, error) {
	return LoadWithOverrides(LoadOptions{})
}

// LoadWithOverrides loads configuration with command-line overrides
func LoadWithOverrides(opts LoadOptions) (*Config, error) {
	config := &Config{}

	config.Server.Host = getOverrideOrEnv(opts.Host, "SERVER_HOST", "0.0.0.0")
	config.Server.Port = getOverrideOrEnv(opts.Port, "SERVER_PORT", "8080")
	config.Server.ReadTimeout = getDurationWithDefault("SERVER_READ_TIMEOUT", 30*time.Second)
	config.Server.WriteTimeout = getDurationWithDefault("SERVER_WRITE_TIMEOUT", 30*time.Second)
	config.Server.IdleTimeout = getDurationWithDefault("SERVER_IDLE_TIMEOUT", 120*time.Second)

	config.Preview.Width = getIntWithDefault("PREVIEW_WIDTH", 640)
	config.Preview.Height = getIntWithDefault("PREVIEW_HEIGHT", 480)
	config.Preview.Format = getEnvWithDefault("PREVIEW_FORMAT", "yuv420p")
	config.Preview.FPS = getIntWithDefault("PREVIEW_FPS", 25)
	config.Preview.ZstdLevel = getIntWithDefault("PREVIEW_ZSTD_LEVEL", 3)

	if opts.Width > 0 {
		config.Preview.Width = opts.Width
	}
	if opts.Height > 0 {
		config.Preview.Height = opts.Height
	}

	config.Logging.Level = getOverrideOrEnv(opts.LogLevel, "LOG_LEVEL", "info")
	config.Logging.Format = getEnvWithDefault("LOG_FORMAT", "text")

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port: %s", c.Server.Port)
	}

	// the deinterlacer needs both dimensions to be multiples of 4
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 ||
		c.Preview.Width%4 != 0 || c.Preview.Height%4 != 0 {
		return fmt.Errorf("preview dimensions must be positive multiples of 4, got %dx%d",
			c.Preview.Width, c.Preview.Height)
	}

	if _, err := pixfmt.Parse(c.Preview.Format); err != nil {
		return fmt.Errorf("invalid preview format %q: %w", c.Preview.Format, err)
	}

	if c.Preview.FPS < 1 || c.Preview.FPS > 120 {
		return fmt.Errorf("preview fps must be in 1..120, got %d", c.Preview.FPS)
	}

	if c.Preview.ZstdLevel < 1 || c.Preview.ZstdLevel > 19 {
		return fmt.Errorf("zstd level must be in 1..19, got %d", c.Preview.ZstdLevel)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}

	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// Helper functions for environment variable parsing
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getOverrideOrEnv returns command-line override value, env value, or default
func getOverrideOrEnv(override, envKey, defaultValue string) string {
	if override != "" {
		return override
	}
	return getEnvWithDefault(envKey, defaultValue)
}
