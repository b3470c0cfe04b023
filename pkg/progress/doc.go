// Package progress provides tick-driven timing reactions, progress drivers
// built on them, and an animator that plugs a pair of reactions into a view.
//
// A Reaction advances linearly from zero to one (or back) after a start
// delay, one scheduler frame at a time, and reports itself active until it
// gets there. Curves are left to whoever reads Progress.
//
//	a := progress.NewAnimator("fade", sched,
//	    view.Timing{Duration: 300 * time.Millisecond},
//	    view.Timing{Duration: 200 * time.Millisecond},
//	)
//	a.Attach(v)
//	defer a.Detach()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package progress
