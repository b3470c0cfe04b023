package configwatcher

import "github.com/CoderValencia/uiview/pkg/view"

// WithConfigWatcher returns a view Option that enables config file watching.
// When enabled, the plugin reloads the file on every change and applies it
// to the view.
//
// Usage:
//
//	v, err := view.New(sched, cfg,
//	    configwatcher.WithConfigWatcher(configwatcher.Config{
//	        Path:          "/etc/uiview/menu.toml",
//	        DebounceDelay: 100 * time.Millisecond,
//	    }),
//	)
func WithConfigWatcher(cfg Config) view.Option {
	plugin := New(cfg)
	return view.WithPlugin(plugin)
}

// WithDefaultConfigWatcher returns a view Option that watches path with
// default settings (debounce 100ms, view.LoadConfigFile).
//
// Usage:
//
//	v, err := view.New(sched, cfg, configwatcher.WithDefaultConfigWatcher(path))
func WithDefaultConfigWatcher(path string) view.Option {
	cfg := DefaultConfig()
	cfg.Path = path
	return WithConfigWatcher(cfg)
}
