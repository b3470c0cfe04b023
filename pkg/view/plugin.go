package view

import (
	"context"

	"github.com/CoderValencia/uiview/pkg/tick"
)

// Plugin extends a view with optional behaviour such as config hot reload or
// metrics.
type Plugin interface {
	// Name returns the plugin identifier used in logs.
	Name() string

	// Initialize is called by View.Start, in registration order. A returned
	// error aborts Start.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown is called by View.Close, in reverse registration order.
	Shutdown(ctx context.Context) error
}

// PluginConfig is handed to plugins on initialization.
type PluginConfig struct {
	// View is the view the plugin is attached to.
	View *View

	// Scheduler is the scheduler the view runs on. Plugins running their own
	// goroutines hand work to the view with Scheduler.Post.
	Scheduler *tick.Scheduler

	// Logger is the view's logger.
	Logger Logger
}
