package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/city-lens/pkg/history"
	"github.com/docker/go-units"
)

const (
	EnvAppBasePath      = "APP_BASE_PATH"
	EnvAppHistory       = "APP_HISTORY"
	EnvAppMaxUploadSize = "APP_MAX_UPLOAD_SIZE"
)

// AppConfig contains settings for the view application.
type AppConfig struct {
	BasePath         string           `toml:"base_path"`
	History          history.Strategy `toml:"history"`
	MaxUploadSize    string           `toml:"max_upload_size"`
	maxUploadSizeVal int64
}

// MaxUploadSizeBytes returns the parsed upload limit. Valid after Finalize.
func (c *AppConfig) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies non-zero values from the overlay configuration.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.History != "" {
		c.History = overlay.History
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if c.History == "" {
		c.History = history.StrategyBrowser
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppHistory); v != "" {
		c.History = history.Strategy(v)
	}
	if v := os.Getenv(EnvAppMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *AppConfig) validate() error {
	if err := c.History.Validate(); err != nil {
		return err
	}

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}
