package scenario

import (
	"fmt"
	"time"

	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/progress"
	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

// Runner plays a scenario against a view. Like the view, it runs on the
// scheduler goroutine.
type Runner struct {
	sc     *Scenario
	view   *view.View
	sched  *tick.Scheduler
	logger log.Logger

	animators map[string]*progress.Animator
	drivers   map[string]*progress.Driver

	tasks   []*tick.Task
	started bool
	startAt time.Duration
	fired   int
}

// Build creates the scenario's animators and drivers and attaches them to v.
func Build(sc *Scenario, v *view.View, logger log.Logger, opts ...progress.Option) (*Runner, error) {
	r := &Runner{
		sc:        sc,
		view:      v,
		sched:     v.Scheduler(),
		logger:    log.OrNoop(logger),
		animators: make(map[string]*progress.Animator, len(sc.Animators)),
		drivers:   make(map[string]*progress.Driver, len(sc.Drivers)),
	}

	for _, a := range sc.Animators {
		anim := progress.NewAnimator(a.Name, r.sched, a.Show, a.Hide, opts...)
		anim.Attach(v)
		r.animators[a.Name] = anim
	}
	for _, d := range sc.Drivers {
		kind, ok := pools[d.Pool]
		if !ok {
			return nil, fmt.Errorf("%w: driver %q: unknown pool %q", ErrInvalidScenario, d.Name, d.Pool)
		}
		drv := progress.NewDriver(r.sched, d.Timing, append([]progress.Option{progress.WithName(d.Name)}, opts...)...)
		if err := v.AddProgressDriver(kind, drv); err != nil {
			return nil, err
		}
		r.drivers[d.Name] = drv
	}
	return r, nil
}

// Animator returns the animator named name.
func (r *Runner) Animator(name string) (*progress.Animator, bool) {
	a, ok := r.animators[name]
	return a, ok
}

// Driver returns the progress driver named name.
func (r *Runner) Driver(name string) (*progress.Driver, bool) {
	d, ok := r.drivers[name]
	return d, ok
}

// Start schedules every step relative to the current scheduler time.
// Later calls are no-ops.
func (r *Runner) Start() {
	if r.started {
		return
	}
	r.started = true
	r.startAt = r.sched.Elapsed()
	for _, st := range r.sc.Steps {
		r.tasks = append(r.tasks, r.sched.AfterDuration(string(st.Action), st.At, func() {
			r.apply(st)
		}))
	}
	r.logger.Info("scenario started",
		log.String("scenario", r.sc.Name),
		log.Int("steps", len(r.sc.Steps)),
		log.Duration("end", r.sc.End))
}

// Stop cancels the steps that have not fired yet.
func (r *Runner) Stop() {
	for _, t := range r.tasks {
		t.Stop()
	}
	r.tasks = nil
}

// Fired returns how many steps have been applied.
func (r *Runner) Fired() int { return r.fired }

// Finished reports whether every step fired and End has been reached.
func (r *Runner) Finished() bool {
	return r.started &&
		r.fired == len(r.sc.Steps) &&
		r.sched.Elapsed()-r.startAt >= r.sc.End
}

func (r *Runner) apply(st Step) {
	r.fired++
	r.logger.Debug("scenario step",
		log.String("scenario", r.sc.Name),
		log.String("action", string(st.Action)),
		log.Duration("at", st.At),
		log.Stringer("state", r.view.Visibility()))

	switch st.Action {
	case ActionShow:
		r.view.Show()
	case ActionHide:
		r.view.Hide()
	case ActionToggle:
		r.view.Toggle()
	case ActionInstantShow:
		r.view.InstantShow()
	case ActionInstantHide:
		r.view.InstantHide()
	case ActionInstantToggle:
		r.view.InstantToggle()
	case ActionRelease:
		if a, ok := r.animators[st.Target]; ok {
			a.ShowReaction().Release()
			a.HideReaction().Release()
		}
	}
}
