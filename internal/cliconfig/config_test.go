package cliconfig

import (
	"testing"
	"time"

	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TickInterval != tick.DefaultInterval {
		t.Errorf("TickInterval = %v, want %v", cfg.TickInterval, tick.DefaultInterval)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.MetricsAddr != DefaultMetricsAddr {
		t.Errorf("MetricsAddr = %v, want %v", cfg.MetricsAddr, DefaultMetricsAddr)
	}
	if cfg.Metrics || cfg.Watch {
		t.Errorf("Metrics/Watch should default to false")
	}
	if cfg.View.Name != "view" {
		t.Errorf("View.Name = %v, want view", cfg.View.Name)
	}
	if cfg.View.StartupBehaviour != view.BehaviourDisabled {
		t.Errorf("View.StartupBehaviour = %v, want disabled", cfg.View.StartupBehaviour)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "zero tick interval",
			mutate:  func(c *Config) { c.TickInterval = 0 },
			wantErr: true,
		},
		{
			name:    "negative tick interval",
			mutate:  func(c *Config) { c.TickInterval = -time.Millisecond },
			wantErr: true,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "loud" },
			wantErr: true,
		},
		{
			name:    "empty log level defaults",
			mutate:  func(c *Config) { c.LogLevel = "" },
			wantErr: false,
		},
		{
			name:    "negative auto-hide delay",
			mutate:  func(c *Config) { c.View.AutoHideAfterShowDelay = -time.Second },
			wantErr: true,
		},
		{
			name:    "invalid startup behaviour",
			mutate:  func(c *Config) { c.View.StartupBehaviour = view.Behaviour(42) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_Derivations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = ""
	cfg.Metrics = true
	cfg.MetricsAddr = ""
	cfg.View.Name = ""
	cfg.View.AutoHideAfterShow = true
	cfg.View.AutoHideAfterShowDelay = 0

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.MetricsAddr != DefaultMetricsAddr {
		t.Errorf("MetricsAddr = %v, want %v", cfg.MetricsAddr, DefaultMetricsAddr)
	}
	if cfg.View.Name != "view" {
		t.Errorf("View.Name = %v, want view", cfg.View.Name)
	}
	if cfg.View.AutoHideAfterShowDelay != 0 {
		t.Errorf("View.AutoHideAfterShowDelay = %v, want explicit 0 kept", cfg.View.AutoHideAfterShowDelay)
	}
}
