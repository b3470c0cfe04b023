// Package metrics provides Prometheus instrumentation for uiview.
// When enabled, it counts issued commands and visibility writes, exposes the
// current state, and observes how long transitions take in scheduler time.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

var states = []view.Visibility{view.Visible, view.Hidden, view.IsShowing, view.IsHiding}

// Config holds configuration options for the metrics plugin.
type Config struct {
	// Namespace prefixes every metric name.
	// Default: "uiview"
	Namespace string

	// Registerer receives the collectors. Views sharing a registerer share
	// collectors, told apart by the "view" label.
	// Default: prometheus.DefaultRegisterer
	Registerer prometheus.Registerer

	// Buckets are the transition duration histogram buckets, in seconds.
	// Default: 0.05s to 5s
	Buckets []float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Namespace:  "uiview",
		Registerer: prometheus.DefaultRegisterer,
		Buckets:    []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}
}

// Plugin records view events into Prometheus collectors.
type Plugin struct {
	view.BaseEventHandler

	cfg Config

	commands    *prometheus.CounterVec
	changes     *prometheus.CounterVec
	state       *prometheus.GaugeVec
	estimate    *prometheus.GaugeVec
	transitions *prometheus.HistogramVec

	view        *view.View
	sched       *tick.Scheduler
	logger      view.Logger
	name        string
	unsubscribe func()

	transitionStart time.Duration
}

// New creates a new metrics plugin with the given configuration.
func New(cfg Config) *Plugin {
	if cfg.Namespace == "" {
		cfg.Namespace = "uiview"
	}
	if cfg.Registerer == nil {
		cfg.Registerer = prometheus.DefaultRegisterer
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = DefaultConfig().Buckets
	}

	return &Plugin{
		cfg: cfg,
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "commands_total",
			Help:      "Total number of transition commands issued.",
		}, []string{"view", "command"}),
		changes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Name:      "visibility_changes_total",
			Help:      "Total number of visibility writes, by state.",
		}, []string{"view", "state"}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "visibility_state",
			Help:      "1 for the current visibility state of a view, 0 otherwise.",
		}, []string{"view", "state"}),
		estimate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: cfg.Namespace,
			Name:      "estimated_transition_seconds",
			Help:      "Worst-case duration estimated when the last transition started.",
		}, []string{"view", "direction"}),
		transitions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Name:      "transition_duration_seconds",
			Help:      "Scheduler time from the start of a transition to its settled state.",
			Buckets:   cfg.Buckets,
		}, []string{"view", "direction"}),
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "metrics"
}

// Initialize registers the collectors and subscribes to the view.
func (p *Plugin) Initialize(_ context.Context, cfg view.PluginConfig) error {
	p.view = cfg.View
	p.sched = cfg.Scheduler
	p.logger = log.OrNoop(cfg.Logger)
	p.name = cfg.View.Name()

	var err error
	if p.commands, err = register(p.cfg.Registerer, p.commands); err != nil {
		return err
	}
	if p.changes, err = register(p.cfg.Registerer, p.changes); err != nil {
		return err
	}
	if p.state, err = register(p.cfg.Registerer, p.state); err != nil {
		return err
	}
	if p.estimate, err = register(p.cfg.Registerer, p.estimate); err != nil {
		return err
	}
	if p.transitions, err = register(p.cfg.Registerer, p.transitions); err != nil {
		return err
	}

	p.setState(cfg.View.Visibility())
	p.unsubscribe = cfg.View.Subscribe(p)
	p.logger.Info("metrics plugin initialized", log.String("view", p.name))
	return nil
}

// Shutdown unsubscribes from the view. Collected series are kept so a last
// scrape still sees them.
func (p *Plugin) Shutdown(context.Context) error {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	return nil
}

// register registers c, or returns the collector already registered under
// the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (p *Plugin) OnCommandIssued(cmd view.Command) {
	p.commands.WithLabelValues(p.name, cmd.String()).Inc()
}

func (p *Plugin) OnVisibilityChanged(current view.Visibility) {
	p.changes.WithLabelValues(p.name, current.String()).Inc()
	p.setState(current)
}

func (p *Plugin) OnShowStarted() {
	p.transitionStart = p.sched.Elapsed()
	p.estimate.WithLabelValues(p.name, "show").Set(p.view.EstimateShowDuration().Seconds())
}

func (p *Plugin) OnHideStarted() {
	p.transitionStart = p.sched.Elapsed()
	p.estimate.WithLabelValues(p.name, "hide").Set(p.view.EstimateHideDuration().Seconds())
}

func (p *Plugin) OnBecameVisible() {
	p.observe("show")
}

func (p *Plugin) OnBecameHidden() {
	p.observe("hide")
}

func (p *Plugin) observe(direction string) {
	took := p.sched.Elapsed() - p.transitionStart
	p.transitions.WithLabelValues(p.name, direction).Observe(took.Seconds())
}

func (p *Plugin) setState(current view.Visibility) {
	for _, s := range states {
		v := 0.0
		if s == current {
			v = 1
		}
		p.state.WithLabelValues(p.name, s.String()).Set(v)
	}
}

var (
	_ view.Plugin       = (*Plugin)(nil)
	_ view.EventHandler = (*Plugin)(nil)
)
