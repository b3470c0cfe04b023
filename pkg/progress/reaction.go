package progress

import (
	"math/rand/v2"
	"time"

	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

// epsilon absorbs float drift when progress reaches an extreme.
const epsilon = 1e-9

// Option configures a Reaction.
type Option func(*Reaction)

// WithName sets the name used for the reaction's scheduler task.
func WithName(name string) Option {
	return func(r *Reaction) {
		r.name = name
	}
}

// WithRand sets the source of random delays and durations. Tests pass a
// seeded source.
func WithRand(src rand.Source) Option {
	return func(r *Reaction) {
		if src != nil {
			r.rng = rand.New(src)
		}
	}
}

// WithProgressFunc registers a callback invoked whenever progress changes.
func WithProgressFunc(fn func(progress float64)) Option {
	return func(r *Reaction) {
		r.onProgress = fn
	}
}

// Reaction is a linear progress animation between zero and one.
type Reaction struct {
	name   string
	sched  *tick.Scheduler
	timing view.Timing
	rng    *rand.Rand

	progress  float64
	direction view.Direction
	delayLeft time.Duration
	duration  time.Duration

	task       *tick.Task
	gen        uint64
	released   bool
	onProgress func(float64)
}

// NewReaction creates an idle reaction at progress zero.
func NewReaction(sched *tick.Scheduler, timing view.Timing, opts ...Option) *Reaction {
	r := &Reaction{
		name:   "reaction",
		sched:  sched,
		timing: timing,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsActive reports whether the reaction is delaying or animating.
func (r *Reaction) IsActive() bool { return r.task.Running() }

// Timing returns the declared timing.
func (r *Reaction) Timing() view.Timing { return r.timing }

// SetTiming replaces the declared timing. It applies from the next Play.
func (r *Reaction) SetTiming(t view.Timing) { r.timing = t }

// Progress returns the current progress in [0, 1].
func (r *Reaction) Progress() float64 { return r.progress }

// Direction returns the direction of the last play.
func (r *Reaction) Direction() view.Direction { return r.direction }

// Released reports whether Release was called. A nil reaction counts as
// released.
func (r *Reaction) Released() bool { return r == nil || r.released }

// Release stops the reaction and marks it for removal from any registry or
// pool holding it.
func (r *Reaction) Release() {
	r.Stop()
	r.released = true
}

// Play starts from the beginning of direction: zero for Forward, one for
// Reverse, after a freshly picked start delay.
func (r *Reaction) Play(direction view.Direction) {
	r.Stop()
	r.direction = direction
	if direction == view.Forward {
		r.set(0)
	} else {
		r.set(1)
	}
	r.start(r.pick(r.timing.UseRandomStartDelay, r.timing.StartDelay, r.timing.RandomStartDelay))
}

// Reverse turns the reaction around from its current progress, without a
// start delay.
func (r *Reaction) Reverse() {
	r.Stop()
	r.direction = r.direction.Opposite()
	r.start(0)
}

// Stop halts the reaction at its current progress.
func (r *Reaction) Stop() {
	r.task.Stop()
	r.task = nil
}

// SetProgressAtOne stops and snaps to one.
func (r *Reaction) SetProgressAtOne() {
	r.Stop()
	r.set(1)
}

// SetProgressAtZero stops and snaps to zero.
func (r *Reaction) SetProgressAtZero() {
	r.Stop()
	r.set(0)
}

func (r *Reaction) start(delay time.Duration) {
	r.delayLeft = delay
	r.duration = r.pick(r.timing.UseRandomDuration, r.timing.Duration, r.timing.RandomDuration)
	if r.finished() && delay <= 0 {
		return
	}
	r.gen++
	gen := r.gen
	r.task = r.sched.Go(r.name, func() bool { return r.step(gen) })
}

// step advances one frame. gen guards against a progress callback that
// restarted the reaction mid-step.
func (r *Reaction) step(gen uint64) bool {
	dt := r.sched.Interval()
	if r.delayLeft > 0 {
		r.delayLeft -= dt
		return false
	}

	target := r.target()
	if r.duration <= 0 {
		r.set(target)
	} else {
		delta := float64(dt) / float64(r.duration)
		if r.direction == view.Forward {
			r.set(min(r.progress+delta, 1))
		} else {
			r.set(max(r.progress-delta, 0))
		}
	}
	if r.gen != gen {
		return true
	}
	if r.finished() {
		r.set(target)
		r.task = nil
		return true
	}
	return false
}

func (r *Reaction) target() float64 {
	if r.direction == view.Forward {
		return 1
	}
	return 0
}

func (r *Reaction) finished() bool {
	if r.direction == view.Forward {
		return r.progress >= 1-epsilon
	}
	return r.progress <= epsilon
}

func (r *Reaction) set(p float64) {
	if p == r.progress {
		return
	}
	r.progress = p
	if r.onProgress != nil {
		r.onProgress(p)
	}
}

// pick returns fixed, or a uniform draw from rng when use is set.
func (r *Reaction) pick(use bool, fixed time.Duration, rng view.Range) time.Duration {
	if !use {
		return fixed
	}
	if rng.Max <= rng.Min {
		return rng.Max
	}
	return rng.Min + time.Duration(r.rng.Int64N(int64(rng.Max-rng.Min)+1))
}

var (
	_ view.Reaction   = (*Reaction)(nil)
	_ view.Releasable = (*Reaction)(nil)
)
