package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "TRISHADE"

// Env holds the environment overrides. Zero values mean unset.
type Env struct {
	Theme  string `envconfig:"THEME"`
	Width  int    `envconfig:"WIDTH"`
	Height int    `envconfig:"HEIGHT"`
	Output string `envconfig:"OUTPUT"`
}

// ApplyEnv overlays TRISHADE_* variables onto c.
func (c *Config) ApplyEnv() error {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if env.Theme != "" {
		c.Theme = env.Theme
	}
	if env.Width > 0 {
		c.Width = env.Width
	}
	if env.Height > 0 {
		c.Height = env.Height
	}
	if env.Output != "" {
		c.Output = env.Output
	}
	return nil
}
