package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/CoderValencia/uiview/pkg/view"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Scenario     string `toml:"scenario"`
	TickInterval string `toml:"tick_interval"`
	LogLevel     string `toml:"log_level"`
	MetricsAddr  string `toml:"metrics_addr"`
	Metrics      *bool  `toml:"metrics"`
	Watch        *bool  `toml:"watch"`

	View view.FileConfig `toml:"view"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.uiview/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".uiview", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("scenario", fc.Scenario, &cfg.ScenarioPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("metrics-addr", fc.MetricsAddr, &cfg.MetricsAddr)

	if err := s.setDuration("tick", fc.TickInterval, &cfg.TickInterval); err != nil {
		return err
	}

	s.setBool("metrics", fc.Metrics, &cfg.Metrics)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	// View keys that also have flags.
	vf := fc.View
	if s.changed["name"] {
		vf.Name = ""
	}
	if s.changed["startup"] {
		vf.StartupBehaviour = ""
	}
	if s.changed["auto-hide"] {
		vf.AutoHideAfterShow = nil
	}
	if s.changed["auto-hide-delay"] {
		vf.AutoHideAfterShowDelay = ""
	}
	return vf.Apply(&cfg.View)
}

// LoadViewConfig reads the [view] table of a config file onto base. The
// config watcher reloads the view with it.
func LoadViewConfig(path string, base view.Config) (view.Config, error) {
	fc, err := LoadFileConfig(path)
	if err != nil {
		return base, err
	}
	if err := fc.View.Apply(&base); err != nil {
		return base, err
	}
	base.SetDefaults()
	return base, base.Validate()
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
