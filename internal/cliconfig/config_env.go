package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (UIVIEW_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("scenario", os.Getenv("UIVIEW_SCENARIO"), &cfg.ScenarioPath)
	s.setString("log-level", os.Getenv("UIVIEW_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("metrics-addr", os.Getenv("UIVIEW_METRICS_ADDR"), &cfg.MetricsAddr)
	s.setString("name", os.Getenv("UIVIEW_VIEW_NAME"), &cfg.View.Name)

	if err := s.setDuration("tick", os.Getenv("UIVIEW_TICK_INTERVAL"), &cfg.TickInterval); err != nil {
		return err
	}
	if err := s.setDuration("auto-hide-delay", os.Getenv("UIVIEW_AUTO_HIDE_DELAY"), &cfg.View.AutoHideAfterShowDelay); err != nil {
		return err
	}
	if err := s.setBehaviour("startup", os.Getenv("UIVIEW_STARTUP_BEHAVIOUR"), &cfg.View.StartupBehaviour); err != nil {
		return err
	}

	s.setBoolFromString("metrics", os.Getenv("UIVIEW_METRICS"), &cfg.Metrics)
	s.setBoolFromString("watch", os.Getenv("UIVIEW_WATCH"), &cfg.Watch)
	s.setBoolFromString("auto-hide", os.Getenv("UIVIEW_AUTO_HIDE"), &cfg.View.AutoHideAfterShow)

	return nil
}
