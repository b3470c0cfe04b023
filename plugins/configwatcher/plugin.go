// Package configwatcher provides config file hot reload for uiview.
// When enabled, it watches a view's TOML config file and applies every
// change to the running view.
package configwatcher

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

// LoadFunc reads a view config from path.
type LoadFunc func(path string) (view.Config, error)

// Plugin implements config watching functionality.
// It watches the directory holding the config file, so editors that
// replace the file on save are followed too.
type Plugin struct {
	mu sync.Mutex

	// Configuration
	path          string
	debounceDelay time.Duration
	load          LoadFunc

	// Runtime state
	view     *view.View
	sched    *tick.Scheduler
	logger   view.Logger
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
	reloads  int
	onReload func(view.Config, error)
}

// Config holds configuration options for the config watcher plugin.
type Config struct {
	// Path is the config file to watch. The plugin is a no-op without one.
	Path string

	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// Load parses the file.
	// Default: view.LoadConfigFile
	Load LoadFunc

	// OnReload, if set, is called after every reload attempt on the
	// scheduler goroutine.
	OnReload func(cfg view.Config, err error)
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
		Load:          view.LoadConfigFile,
	}
}

// New creates a new config watcher plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.Load == nil {
		cfg.Load = view.LoadConfigFile
	}

	return &Plugin{
		path:          cfg.Path,
		debounceDelay: cfg.DebounceDelay,
		load:          cfg.Load,
		onReload:      cfg.OnReload,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "configwatcher"
}

// Reloads returns how many changes were applied successfully.
func (p *Plugin) Reloads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reloads
}

// Initialize sets up the plugin and starts the config watcher.
func (p *Plugin) Initialize(ctx context.Context, cfg view.PluginConfig) error {
	p.mu.Lock()
	p.view = cfg.View
	p.sched = cfg.Scheduler
	p.logger = log.OrNoop(cfg.Logger)
	p.mu.Unlock()

	if p.path == "" {
		p.logger.Warn("config watcher disabled: no config path")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		watcher.Close()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.logger.Info("config watcher plugin initialized", log.String("path", p.path))

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	return nil
}

// Shutdown stops the config watcher.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()

	p.mu.Lock()
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()
	return nil
}

// watchLoop watches for config file changes.
func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	name := filepath.Base(p.path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.debounceReload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("config watcher: watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceReload(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		if ctx.Err() != nil {
			return
		}
		p.reload(ctx)
	})
}

// reload parses the file off the scheduler goroutine and hands the result
// to it. A reload that reaches the scheduler after Shutdown or after the
// view closed is dropped.
func (p *Plugin) reload(ctx context.Context) {
	cfg, err := p.load(p.path)
	p.sched.Post(func() {
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			err = p.view.ApplyConfig(cfg)
		}
		if errors.Is(err, view.ErrClosed) {
			p.logger.Debug("config watcher: view closed, reload dropped", log.String("path", p.path))
			return
		}
		if err != nil {
			p.logger.Error("config watcher: reload failed",
				log.String("path", p.path),
				log.Err(err))
		} else {
			p.mu.Lock()
			p.reloads++
			p.mu.Unlock()
			p.logger.Info("config watcher: config reloaded", log.String("path", p.path))
		}
		if p.onReload != nil {
			p.onReload(cfg, err)
		}
	})
}

// Ensure Plugin implements view.Plugin.
var _ view.Plugin = (*Plugin)(nil)
