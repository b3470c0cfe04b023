package tick

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/CoderValencia/uiview/pkg/log"
)

// DefaultInterval is the frame length used when none is configured.
const DefaultInterval = time.Second / 60

// ErrAlreadyRunning is returned by Run when the scheduler is already running.
var ErrAlreadyRunning = errors.New("tick: scheduler already running")

// Scheduler advances frames and polls tasks. See the package documentation
// for the threading contract.
type Scheduler struct {
	interval time.Duration
	frame    uint64
	elapsed  time.Duration

	tasks  []*Task
	nextID uint64

	postMu sync.Mutex
	posted []func()

	running atomic.Bool
	logger  log.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the frame length. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithLogger sets the logger used for run-loop diagnostics.
func WithLogger(l log.Logger) Option {
	return func(s *Scheduler) {
		s.logger = log.OrNoop(l)
	}
}

// New creates a scheduler at frame zero.
func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		interval: DefaultInterval,
		logger:   log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interval returns the frame length.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Frame returns the current frame number.
func (s *Scheduler) Frame() uint64 { return s.frame }

// Elapsed returns the scheduler time, frame count times interval.
func (s *Scheduler) Elapsed() time.Duration { return s.elapsed }

// Pending returns the number of tasks still scheduled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Running() {
			n++
		}
	}
	return n
}

// Go schedules step to be polled once per frame, starting with the next
// frame, until it returns true or the task is stopped.
func (s *Scheduler) Go(name string, step StepFunc) *Task {
	s.nextID++
	t := &Task{
		id:      s.nextID,
		name:    name,
		step:    step,
		started: s.frame,
	}
	s.tasks = append(s.tasks, t)
	return t
}

// AfterFrames runs fn on the n-th frame from now. n < 1 is treated as 1.
func (s *Scheduler) AfterFrames(name string, n int, fn func()) *Task {
	if n < 1 {
		n = 1
	}
	remaining := n
	return s.Go(name, func() bool {
		remaining--
		if remaining > 0 {
			return false
		}
		fn()
		return true
	})
}

// AfterDuration runs fn on the first frame at which at least d of scheduler
// time has passed. A non-positive d fires on the next frame.
func (s *Scheduler) AfterDuration(name string, d time.Duration, fn func()) *Task {
	deadline := s.elapsed + d
	return s.Go(name, func() bool {
		if s.elapsed < deadline {
			return false
		}
		fn()
		return true
	})
}

// Post queues fn to run at the start of the next frame on the stepping
// goroutine. It is safe to call from any goroutine.
func (s *Scheduler) Post(fn func()) {
	s.postMu.Lock()
	s.posted = append(s.posted, fn)
	s.postMu.Unlock()
}

// Step advances one frame: posted work first, then every task started
// before this frame, in start order.
func (s *Scheduler) Step() {
	s.frame++
	s.elapsed += s.interval

	s.drainPosted()

	current := s.tasks
	s.tasks = nil
	kept := current[:0]
	for _, t := range current {
		if t.stopped {
			continue
		}
		if t.step() {
			t.done = true
			continue
		}
		kept = append(kept, t)
	}
	// Tasks started during this frame were appended to s.tasks.
	s.tasks = append(kept, s.tasks...)
}

// StepN advances n frames.
func (s *Scheduler) StepN(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// StepFor advances frames until at least d of scheduler time has passed.
func (s *Scheduler) StepFor(d time.Duration) {
	deadline := s.elapsed + d
	for s.elapsed < deadline {
		s.Step()
	}
}

// StepUntil advances frames until cond holds or max frames have run. It
// reports whether cond held.
func (s *Scheduler) StepUntil(cond func() bool, max int) bool {
	for i := 0; i < max; i++ {
		if cond() {
			return true
		}
		s.Step()
	}
	return cond()
}

// Run steps the scheduler on a real-time ticker until ctx is done. It
// returns ctx.Err(), or ErrAlreadyRunning.
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug("scheduler started", log.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped",
				log.Uint64("frame", s.frame),
				log.Duration("elapsed", s.elapsed),
			)
			return ctx.Err()
		case <-ticker.C:
			s.Step()
		}
	}
}

// Running reports whether Run is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) drainPosted() {
	s.postMu.Lock()
	posted := s.posted
	s.posted = nil
	s.postMu.Unlock()

	for _, fn := range posted {
		fn()
	}
}
