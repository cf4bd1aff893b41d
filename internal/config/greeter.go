package config

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// EnvGreeterMaxBodySize overrides the echo request body cap.
const EnvGreeterMaxBodySize = "GREETER_MAX_BODY_SIZE"

// GreeterConfig contains configuration for the greeting endpoints.
type GreeterConfig struct {
	// MaxBodySize caps the echo request body as a human-readable size such as "10MB".
	// Empty means unlimited.
	MaxBodySize    string `toml:"max_body_size"`
	maxBodySizeVal int64
}

// MaxBodySizeBytes returns the parsed body cap in bytes, or 0 when unlimited.
func (c *GreeterConfig) MaxBodySizeBytes() int64 {
	return c.maxBodySizeVal
}

// Finalize loads environment overrides and validates the greeter configuration.
func (c *GreeterConfig) Finalize() error {
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *GreeterConfig) Merge(overlay *GreeterConfig) {
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}
}

func (c *GreeterConfig) loadEnv() {
	if v := os.Getenv(EnvGreeterMaxBodySize); v != "" {
		c.MaxBodySize = v
	}
}

func (c *GreeterConfig) validate() error {
	c.maxBodySizeVal = 0
	if c.MaxBodySize == "" {
		return nil
	}

	size, err := units.FromHumanSize(c.MaxBodySize)
	if err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_body_size must be positive")
	}
	c.maxBodySizeVal = size

	return nil
}
