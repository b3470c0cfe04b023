package progress

import (
	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

// Driver is a progress driver backed by a Reaction. Views command it
// directly through their progress-driver pools.
type Driver struct {
	reaction *Reaction
}

// NewDriver creates a driver at progress zero.
func NewDriver(sched *tick.Scheduler, timing view.Timing, opts ...Option) *Driver {
	return &Driver{reaction: NewReaction(sched, timing, opts...)}
}

func (d *Driver) Play(direction view.Direction) { d.reaction.Play(direction) }
func (d *Driver) Reverse()                      { d.reaction.Reverse() }
func (d *Driver) Stop()                         { d.reaction.Stop() }
func (d *Driver) SetProgressAtOne()             { d.reaction.SetProgressAtOne() }
func (d *Driver) SetProgressAtZero()            { d.reaction.SetProgressAtZero() }

// Reaction returns the underlying timing reaction.
func (d *Driver) Reaction() view.Reaction { return d.reaction }

// Progress returns the current progress in [0, 1].
func (d *Driver) Progress() float64 { return d.reaction.Progress() }

// Released reports whether the driver was released. Released drivers are
// dropped from the pools holding them.
func (d *Driver) Released() bool { return d == nil || d.reaction.Released() }

// Release stops the driver and marks it for removal.
func (d *Driver) Release() { d.reaction.Release() }

var (
	_ view.ProgressDriver = (*Driver)(nil)
	_ view.Releasable     = (*Driver)(nil)
)
