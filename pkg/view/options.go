package view

// Option configures optional behavior of a View.
type Option func(*options)

// options holds the optional collaborators of a View.
type options struct {
	logger        Logger
	eventHandlers []EventHandler
	plugins       []Plugin

	surface      Surface
	raycaster    Raycaster
	owner        Owner
	selector     Selector
	selectTarget any
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithEventHandler adds a handler for view events. It may be given more than
// once; handlers are called in the order they were added.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		if handler != nil {
			o.eventHandlers = append(o.eventHandlers, handler)
		}
	}
}

// WithPlugin registers a plugin to be initialized when the view starts.
// Plugins are initialized in registration order and shutdown in reverse order.
func WithPlugin(plugin Plugin) Option {
	return func(o *options) {
		if plugin != nil {
			o.plugins = append(o.plugins, plugin)
		}
	}
}

// WithSurface sets the rendering surface enabled on show and, when
// configured, disabled once hidden.
func WithSurface(s Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithRaycaster sets the input router enabled on show and, when configured,
// disabled once hidden.
func WithRaycaster(r Raycaster) Option {
	return func(o *options) {
		o.raycaster = r
	}
}

// WithOwner sets the owner activated on show. Without one the view tracks
// activation itself.
func WithOwner(owner Owner) Option {
	return func(o *options) {
		o.owner = owner
	}
}

// WithSelector sets the selection subsystem and the target selected after a
// show when Config.AutoSelectAfterShow is set.
func WithSelector(s Selector, target any) Option {
	return func(o *options) {
		o.selector = s
		o.selectTarget = target
	}
}
