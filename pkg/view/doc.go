// Package view provides an embeddable visibility state machine whose
// transitions are gated on animations.
//
// A View moves between Visible and Hidden through the transient IsShowing and
// IsHiding states. An animated transition waits until every reaction
// registered by external animators, and every progress driver the view owns,
// has gone idle. A transition in flight can be reversed by the opposite
// command, and calls made on the frame the state last changed are deferred
// by two frames.
//
// # Basic Usage
//
// A view runs on a tick.Scheduler. Every View method must be called from the
// goroutine that steps the scheduler; other goroutines hand work over with
// Scheduler.Post.
//
//	sched := tick.New()
//	v, err := view.New(sched, view.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := v.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	v.Hide()
//	sched.StepN(10)
//
// # Animators
//
// Animators register reactions with [View.ShowReactions] and
// [View.HideReactions] and usually listen to [EventHandler.OnCommandIssued]
// to start or reverse their animations. Progress drivers the view commands
// directly are added with [View.AddProgressDriver].
//
// # Event Handling
//
// Implement [EventHandler], embedding [BaseEventHandler] for no-op defaults,
// and pass it via [WithEventHandler] or [View.Subscribe]. Handlers run
// synchronously in registration order.
//
// # Plugins
//
// Plugins are initialized by [View.Start] in registration order and shut down
// by [View.Close] in reverse order:
//
//	import "github.com/CoderValencia/uiview/plugins/metrics"
//
//	v, err := view.New(sched, cfg, metrics.WithMetrics(metrics.DefaultConfig()))
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package view
