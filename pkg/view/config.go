package view

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/CoderValencia/uiview/internal/app"
)

// DefaultAutoHideDelay is the auto-hide delay of DefaultConfig.
const DefaultAutoHideDelay = 3 * time.Second

// Config holds the behavioural switches of a view.
type Config struct {
	// Name identifies the view in logs, metrics and events.
	// Default: "view"
	Name string

	// AutoHideAfterShow starts a timer once the view is Visible that hides
	// it again after AutoHideAfterShowDelay of scheduler time.
	AutoHideAfterShow      bool
	AutoHideAfterShowDelay time.Duration

	// DisableOwnerWhenHidden deactivates the owner DeactivateDelayFrames
	// frames after the view becomes Hidden.
	DisableOwnerWhenHidden bool

	// DisableSurfaceWhenHidden and DisableRaycastWhenHidden switch the
	// rendering surface and input routing off once Hidden.
	DisableSurfaceWhenHidden bool
	DisableRaycastWhenHidden bool

	ClearSelectedOnShow bool
	ClearSelectedOnHide bool
	AutoSelectAfterShow bool

	// StartupBehaviour is what Start does.
	// Default: BehaviourDisabled
	StartupBehaviour Behaviour
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:                     "view",
		AutoHideAfterShowDelay:   DefaultAutoHideDelay,
		DisableOwnerWhenHidden:   true,
		DisableSurfaceWhenHidden: true,
		DisableRaycastWhenHidden: true,
		StartupBehaviour:         BehaviourDisabled,
	}
}

// SetDefaults fills unset fields with defaults. A zero auto-hide delay is
// kept as is: it hides on the frame after the view becomes visible.
// DefaultAutoHideDelay only comes from DefaultConfig or an absent file key.
func (c *Config) SetDefaults() {
	if c.Name == "" {
		c.Name = "view"
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.AutoHideAfterShowDelay < 0 {
		return fmt.Errorf("%w: auto-hide delay must not be negative", ErrInvalidConfig)
	}
	if !c.StartupBehaviour.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrInvalidBehaviour)
	}
	return nil
}

func (c Config) settings(selectTarget any) app.Settings {
	return app.Settings{
		AutoHideAfterShow:        c.AutoHideAfterShow,
		AutoHideAfterShowDelay:   c.AutoHideAfterShowDelay,
		DisableOwnerWhenHidden:   c.DisableOwnerWhenHidden,
		DisableSurfaceWhenHidden: c.DisableSurfaceWhenHidden,
		DisableRaycastWhenHidden: c.DisableRaycastWhenHidden,
		ClearSelectedOnShow:      c.ClearSelectedOnShow,
		ClearSelectedOnHide:      c.ClearSelectedOnHide,
		AutoSelectAfterShow:      c.AutoSelectAfterShow,
		AutoSelectTarget:         selectTarget,
	}
}

// FileConfig mirrors Config but uses strings for durations and pointers for
// booleans to make TOML friendly. Unset keys leave the base config alone.
type FileConfig struct {
	Name                     string `toml:"name" yaml:"name"`
	AutoHideAfterShow        *bool  `toml:"auto_hide_after_show" yaml:"auto_hide_after_show"`
	AutoHideAfterShowDelay   string `toml:"auto_hide_after_show_delay" yaml:"auto_hide_after_show_delay"`
	DisableOwnerWhenHidden   *bool  `toml:"disable_owner_when_hidden" yaml:"disable_owner_when_hidden"`
	DisableSurfaceWhenHidden *bool  `toml:"disable_surface_when_hidden" yaml:"disable_surface_when_hidden"`
	DisableRaycastWhenHidden *bool  `toml:"disable_raycast_when_hidden" yaml:"disable_raycast_when_hidden"`
	ClearSelectedOnShow      *bool  `toml:"clear_selected_on_show" yaml:"clear_selected_on_show"`
	ClearSelectedOnHide      *bool  `toml:"clear_selected_on_hide" yaml:"clear_selected_on_hide"`
	AutoSelectAfterShow      *bool  `toml:"auto_select_after_show" yaml:"auto_select_after_show"`
	StartupBehaviour         string `toml:"startup_behaviour" yaml:"startup_behaviour"`
}

// Apply overlays the keys set in fc onto cfg.
func (fc FileConfig) Apply(cfg *Config) error {
	if fc.Name != "" {
		cfg.Name = fc.Name
	}
	if fc.AutoHideAfterShowDelay != "" {
		d, err := time.ParseDuration(fc.AutoHideAfterShowDelay)
		if err != nil {
			return fmt.Errorf("parse auto_hide_after_show_delay: %w", err)
		}
		cfg.AutoHideAfterShowDelay = d
	}
	if fc.StartupBehaviour != "" {
		b, err := ParseBehaviour(fc.StartupBehaviour)
		if err != nil {
			return fmt.Errorf("parse startup_behaviour: %w", err)
		}
		cfg.StartupBehaviour = b
	}

	setBool(fc.AutoHideAfterShow, &cfg.AutoHideAfterShow)
	setBool(fc.DisableOwnerWhenHidden, &cfg.DisableOwnerWhenHidden)
	setBool(fc.DisableSurfaceWhenHidden, &cfg.DisableSurfaceWhenHidden)
	setBool(fc.DisableRaycastWhenHidden, &cfg.DisableRaycastWhenHidden)
	setBool(fc.ClearSelectedOnShow, &cfg.ClearSelectedOnShow)
	setBool(fc.ClearSelectedOnHide, &cfg.ClearSelectedOnHide)
	setBool(fc.AutoSelectAfterShow, &cfg.AutoSelectAfterShow)
	return nil
}

func setBool(value *bool, dst *bool) {
	if value != nil {
		*dst = *value
	}
}

// LoadConfigFile reads a TOML view config from path, overlays it onto
// DefaultConfig and validates the result.
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var fc FileConfig
	if err := toml.Unmarshal(b, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := fc.Apply(&cfg); err != nil {
		return cfg, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
