package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CoderValencia/uiview/internal/app"
	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/tick"
)

// View is a visibility state machine with animation-gated transitions. Use
// New to create one, then Start to run its startup behaviour.
//
// Transition methods and accessors must be called on the scheduler
// goroutine. Start and Close may be called from any goroutine while the
// scheduler is not being stepped.
type View struct {
	id     string
	config Config
	opts   options
	sched  *tick.Scheduler
	logger Logger

	driver   *app.Driver
	handlers *fanout

	plugins     []Plugin
	initialized int

	mu      sync.Mutex
	started bool
	closed  bool
}

// New creates a view in the Visible state on sched.
// Returns an error if configuration is invalid.
func New(sched *tick.Scheduler, cfg Config, opts ...Option) (*View, error) {
	if sched == nil {
		return nil, fmt.Errorf("%w: scheduler is required", ErrInvalidConfig)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	var logger Logger = log.NewNoopLogger()
	if o.logger != nil {
		logger = o.logger
	}

	handlers := &fanout{}
	for _, h := range o.eventHandlers {
		handlers.add(h)
	}

	driver := app.NewDriver(cfg.Name, sched, cfg.settings(o.selectTarget), app.Collaborators{
		Surface:   o.surface,
		Raycaster: o.raycaster,
		Owner:     o.owner,
		Selector:  o.selector,
	}, logger, handlers)

	return &View{
		id:       id,
		config:   cfg,
		opts:     o,
		sched:    sched,
		logger:   logger,
		driver:   driver,
		handlers: handlers,
		plugins:  o.plugins,
	}, nil
}

// ID returns the unique identifier generated for this view.
func (v *View) ID() string { return v.id }

// Name returns the configured view name.
func (v *View) Name() string { return v.config.Name }

// Config returns the active configuration.
func (v *View) Config() Config { return v.config }

// Scheduler returns the scheduler the view runs on.
func (v *View) Scheduler() *tick.Scheduler { return v.sched }

// Logger returns the view's logger.
func (v *View) Logger() Logger { return v.logger }

// Start initializes plugins, then runs the configured startup behaviour.
// Only the first successful call has an effect. Returns ErrClosed after
// Close.
func (v *View) Start(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	if v.started {
		v.mu.Unlock()
		return nil
	}

	pluginCfg := PluginConfig{
		View:      v,
		Scheduler: v.sched,
		Logger:    v.logger,
	}
	for _, p := range v.plugins[v.initialized:] {
		if err := p.Initialize(ctx, pluginCfg); err != nil {
			v.logger.Error("plugin initialization failed",
				log.String("view", v.config.Name),
				log.String("plugin", p.Name()),
				log.Err(err))
			v.mu.Unlock()
			return fmt.Errorf("initialize plugin %s: %w", p.Name(), err)
		}
		v.initialized++
		v.logger.Info("plugin initialized",
			log.String("view", v.config.Name),
			log.String("plugin", p.Name()))
	}

	v.started = true
	v.mu.Unlock()

	v.logger.Info("view started",
		log.String("view", v.config.Name),
		log.String("id", v.id),
		log.Stringer("startup", v.config.StartupBehaviour))
	v.driver.RunStartup(v.config.StartupBehaviour)
	return nil
}

// Close cancels every pending task of the view and shuts plugins down in
// reverse order. Later transition calls are ignored. Close is idempotent.
func (v *View) Close(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true
	v.driver.Stop()

	var errs []error
	for i := v.initialized - 1; i >= 0; i-- {
		p := v.plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			v.logger.Error("plugin shutdown failed",
				log.String("view", v.config.Name),
				log.String("plugin", p.Name()),
				log.Err(err))
			errs = append(errs, fmt.Errorf("shutdown plugin %s: %w", p.Name(), err))
			continue
		}
		v.logger.Info("plugin shutdown complete",
			log.String("view", v.config.Name),
			log.String("plugin", p.Name()))
	}
	v.initialized = 0

	v.logger.Info("view closed", log.String("view", v.config.Name))
	return errors.Join(errs...)
}

// Closed reports whether Close has been called.
func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.closed
}

// Subscribe adds an event handler and returns a function that removes it.
func (v *View) Subscribe(h EventHandler) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	return v.handlers.add(h)
}

// ApplyConfig replaces the behavioural switches at runtime. The view name
// and the startup behaviour, which has already run, are kept. Returns
// ErrClosed after Close.
func (v *View) ApplyConfig(cfg Config) error {
	if v.Closed() {
		return ErrClosed
	}
	cfg.Name = v.config.Name
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	v.config = cfg
	v.driver.SetSettings(cfg.settings(v.opts.selectTarget))
	v.logger.Info("view config applied",
		log.String("view", v.config.Name),
		log.Bool("auto_hide", cfg.AutoHideAfterShow),
		log.Duration("auto_hide_delay", cfg.AutoHideAfterShowDelay))
	return nil
}

// Visibility returns the current visibility state.
func (v *View) Visibility() Visibility { return v.driver.Visibility() }

// IsVisible reports whether the view is Visible or IsShowing.
func (v *View) IsVisible() bool { return v.driver.Visibility().ShowDirection() }

// InTransition reports whether a show or hide is in flight.
func (v *View) InTransition() bool { return v.driver.Visibility().IsTransient() }

// LastCommand returns the last issued command and whether any command has
// been issued.
func (v *View) LastCommand() (Command, bool) { return v.driver.LastCommand() }

// LastFrameChanged returns the frame of the last visibility write and
// whether there has been one.
func (v *View) LastFrameChanged() (uint64, bool) { return v.driver.LastFrameChanged() }

// AutoHidePending reports whether the auto-hide timer is armed.
func (v *View) AutoHidePending() bool { return v.driver.AutoHidePending() }

// Owner returns the owner the view activates. It is the one given with
// WithOwner, or a built-in tracker.
func (v *View) Owner() Owner { return v.driver.Owner() }

// Show starts an animated show, or reverses an in-flight hide.
func (v *View) Show() { v.driver.Show() }

// Hide starts an animated hide, or reverses an in-flight show. It is
// ignored while the owner is inactive.
func (v *View) Hide() { v.driver.Hide() }

// Toggle hides when Visible or IsShowing, shows otherwise.
func (v *View) Toggle() { v.driver.Toggle() }

// InstantShow snaps to Visible.
func (v *View) InstantShow() { v.driver.InstantShow() }

// InstantHide snaps to Hidden.
func (v *View) InstantHide() { v.driver.InstantHide() }

// InstantToggle snaps to the opposite extreme.
func (v *View) InstantToggle() { v.driver.InstantToggle() }

// ShowReactions returns the registry animators add show reactions to.
func (v *View) ShowReactions() *Registry { return v.driver.ShowReactions() }

// HideReactions returns the registry animators add hide reactions to.
func (v *View) HideReactions() *Registry { return v.driver.HideReactions() }

// AddProgressDriver appends d to a pool.
func (v *View) AddProgressDriver(kind PoolKind, d ProgressDriver) error {
	pool := v.driver.Pools().Get(kind)
	if pool == nil {
		return fmt.Errorf("%w: unknown pool %s", ErrInvalidConfig, kind)
	}
	pool.Add(d)
	return nil
}

// RemoveProgressDriver removes d from a pool and reports whether it was there.
func (v *View) RemoveProgressDriver(kind PoolKind, d ProgressDriver) bool {
	pool := v.driver.Pools().Get(kind)
	if pool == nil {
		return false
	}
	return pool.Remove(d)
}

// ProgressDrivers returns a copy of a pool's drivers.
func (v *View) ProgressDrivers(kind PoolKind) []ProgressDriver {
	pool := v.driver.Pools().Get(kind)
	if pool == nil {
		return nil
	}
	return pool.Drivers()
}

// EstimateShowDuration returns the worst-case duration of a show.
func (v *View) EstimateShowDuration() time.Duration { return v.driver.EstimateShowDuration() }

// EstimateHideDuration returns the worst-case duration of a hide.
func (v *View) EstimateHideDuration() time.Duration { return v.driver.EstimateHideDuration() }
