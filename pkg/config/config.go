// ABOUTME: Configuration management for the toolkit with environment variable support
// ABOUTME: Defines logging and generation settings parsed with caarlos0/env

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	coreerrors "feedkit/core/errors"
)

// Config holds all toolkit configuration
type Config struct {
	// Log contains logging configuration
	Log LogConfig

	// Generator contains document generation configuration
	Generator GeneratorConfig
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is the minimum level logged (debug, info, warn, error)
	Level string `env:"FEEDKIT_LOG_LEVEL" envDefault:"info"`

	// Format is the log line format (text or json)
	Format string `env:"FEEDKIT_LOG_FORMAT" envDefault:"text"`
}

// GeneratorConfig holds feed generation configuration
type GeneratorConfig struct {
	// PurgeNamespaces removes unused namespace declarations after generation
	PurgeNamespaces bool `env:"FEEDKIT_PURGE_NAMESPACES" envDefault:"true"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return &coreerrors.ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}

	if c.Log.Format != "text" && c.Log.Format != "json" {
		return &coreerrors.ValidationError{Field: "log.format", Message: "must be 'text' or 'json'"}
	}

	return nil
}
