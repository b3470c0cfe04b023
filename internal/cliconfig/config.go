package cliconfig

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

// DefaultMetricsAddr is where the CLI serves /metrics when enabled.
const DefaultMetricsAddr = ":2112"

// Config holds CLI configuration for uiview.
type Config struct {
	ScenarioPath string
	TickInterval time.Duration
	LogLevel     string

	MetricsAddr string
	Metrics     bool
	Watch       bool

	View view.Config
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TickInterval: tick.DefaultInterval,
		LogLevel:     "info",
		MetricsAddr:  DefaultMetricsAddr,
		View:         view.DefaultConfig(),
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	if c.Metrics && c.MetricsAddr == "" {
		c.MetricsAddr = DefaultMetricsAddr
	}

	c.View.SetDefaults()
	return c.View.Validate()
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBehaviour parses and sets a startup behaviour if not empty and flag not changed.
func (s *configSetter) setBehaviour(flag, value string, dst *view.Behaviour) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := view.ParseBehaviour(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
