package logging

import (
	"fmt"
	"os"
)

// Env names the environment variables that override a Config.
// An empty name disables that override.
type Env struct {
	Level  string
	Format string
}

// DefaultEnv is the override set the city-lens service reads.
var DefaultEnv = &Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

// Config is the [logging] section of the service configuration.
type Config struct {
	Level  Level  `toml:"level"`
	Format Format `toml:"format"`
}

// Finalize fills unset fields with info/text, applies env overrides when
// env is non-nil, and validates the result.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}

	if env != nil {
		if v := lookup(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := lookup(env.Format); v != "" {
			c.Format = Format(v)
		}
	}

	if err := c.Level.Validate(); err != nil {
		return fmt.Errorf("level: %w", err)
	}
	if err := c.Format.Validate(); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}

// Merge copies the overlay's set fields onto c.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
