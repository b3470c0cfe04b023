package metrics

import "github.com/CoderValencia/uiview/pkg/view"

// WithMetrics returns a view Option that enables Prometheus instrumentation.
//
// Usage:
//
//	reg := prometheus.NewRegistry()
//	cfg := metrics.DefaultConfig()
//	cfg.Registerer = reg
//	v, err := view.New(sched, viewCfg, metrics.WithMetrics(cfg))
func WithMetrics(cfg Config) view.Option {
	return view.WithPlugin(New(cfg))
}
