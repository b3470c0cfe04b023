package app

import (
	"fmt"
	"time"

	"github.com/CoderValencia/uiview/internal/domain"
	"github.com/CoderValencia/uiview/internal/ports"
	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/tick"
)

const (
	// DebounceFrames is how long Show/Hide is deferred when the visibility
	// already changed on the current frame.
	DebounceFrames = 2

	// DeactivateDelayFrames is how long deactivating the owner waits after
	// Hidden, so animators that just started are not cut off.
	DeactivateDelayFrames = 3
)

// Settings are the behavioural switches of a view.
type Settings struct {
	AutoHideAfterShow      bool
	AutoHideAfterShowDelay time.Duration

	DisableOwnerWhenHidden   bool
	DisableSurfaceWhenHidden bool
	DisableRaycastWhenHidden bool

	ClearSelectedOnShow bool
	ClearSelectedOnHide bool
	AutoSelectAfterShow bool
	AutoSelectTarget    any
}

// Collaborators are the optional external surfaces a driver toggles.
type Collaborators struct {
	Surface   ports.Surface
	Raycaster ports.Raycaster
	Owner     ports.Owner
	Selector  ports.Selector
}

// Driver orchestrates show and hide transitions of one view. It is not safe
// for concurrent use; every method runs on the scheduler goroutine.
type Driver struct {
	name     string
	sched    *tick.Scheduler
	logger   ports.Logger
	emitter  EventEmitter
	settings Settings

	surface   ports.Surface
	raycaster ports.Raycaster
	owner     ports.Owner
	selector  ports.Selector

	visibility       domain.Visibility
	lastFrameChanged uint64
	changed          bool

	executedFirstCommand bool
	previousCommand      domain.Command

	showReactions *Registry
	hideReactions *Registry
	pools         Pools

	showingTask    *tick.Task
	hidingTask     *tick.Task
	autoHideTask   *tick.Task
	deactivateTask *tick.Task

	stopped bool
}

// NewDriver creates a driver in the Visible state with an active owner.
func NewDriver(name string, sched *tick.Scheduler, settings Settings, collab Collaborators, logger ports.Logger, emitter EventEmitter) *Driver {
	owner := collab.Owner
	if owner == nil {
		owner = &localOwner{active: true}
	}
	return &Driver{
		name:          name,
		sched:         sched,
		logger:        log.OrNoop(logger),
		emitter:       emitter,
		settings:      settings,
		surface:       collab.Surface,
		raycaster:     collab.Raycaster,
		owner:         owner,
		selector:      collab.Selector,
		visibility:    domain.Visible,
		showReactions: NewRegistry(),
		hideReactions: NewRegistry(),
	}
}

// Settings returns the current settings.
func (d *Driver) Settings() Settings { return d.settings }

// SetSettings replaces the settings. A pending auto-hide timer is cancelled
// when auto-hide is switched off. Switching it on while Visible arms the
// timer from now; an already running timer keeps its deadline.
func (d *Driver) SetSettings(s Settings) {
	d.settings = s
	switch {
	case !s.AutoHideAfterShow:
		d.cancelAutoHide()
	case d.visibility == domain.Visible && !d.autoHideTask.Running():
		d.armAutoHide()
	}
}

// ShowReactions returns the registry of show-direction reactions.
func (d *Driver) ShowReactions() *Registry { return d.showReactions }

// HideReactions returns the registry of hide-direction reactions.
func (d *Driver) HideReactions() *Registry { return d.hideReactions }

// Pools returns the progress-driver pools.
func (d *Driver) Pools() *Pools { return &d.pools }

// Owner returns the owner the driver activates and deactivates.
func (d *Driver) Owner() ports.Owner { return d.owner }

// LastCommand returns the previously issued command and whether any command
// has been issued yet.
func (d *Driver) LastCommand() (domain.Command, bool) {
	return d.previousCommand, d.executedFirstCommand
}

// Showing and Hiding report whether a monitor task is running.
func (d *Driver) Showing() bool { return d.showingTask.Running() }
func (d *Driver) Hiding() bool  { return d.hidingTask.Running() }

// AutoHidePending reports whether the auto-hide timer is armed.
func (d *Driver) AutoHidePending() bool { return d.autoHideTask.Running() }

// DeactivatePending reports whether deferred deactivation is armed.
func (d *Driver) DeactivatePending() bool { return d.deactivateTask.Running() }

// InstantShow snaps to Visible without waiting for animations.
func (d *Driver) InstantShow() {
	if d.stopped || d.visibility == domain.Visible {
		return
	}
	d.cancelMonitors()
	d.cancelDeactivate()
	d.enableSurface()
	d.owner.SetActive(true)
	d.issue(domain.InstantShow)
	d.selectOnShow()
	d.setVisibility(domain.IsShowing)
	d.setVisibility(domain.Visible)
}

// InstantHide snaps to Hidden without waiting for animations.
func (d *Driver) InstantHide() {
	if d.stopped || d.visibility == domain.Hidden {
		return
	}
	d.cancelMonitors()
	d.issue(domain.InstantHide)
	d.selectOnHide()
	d.setVisibility(domain.IsHiding)
	d.setVisibility(domain.Hidden)
}

// InstantToggle snaps to the opposite extreme of the current direction.
func (d *Driver) InstantToggle() {
	if d.visibility.ShowDirection() {
		d.InstantHide()
		return
	}
	d.InstantShow()
}

// Show starts an animated show, or reverses an in-flight hide.
func (d *Driver) Show() {
	if d.stopped || d.visibility == domain.IsShowing || d.visibility == domain.Visible {
		d.logger.Debug("show ignored", ports.String("view", d.name), ports.Stringer("state", d.visibility))
		return
	}
	d.owner.SetActive(true)
	if d.debounce("show", d.Show) {
		return
	}

	if d.visibility == domain.IsHiding {
		d.hidingTask.Stop()
		d.hidingTask = nil
		d.issue(domain.ReverseHide)
		d.startShowing()
		return
	}

	d.enableSurface()
	d.issue(domain.Show)
	d.selectOnShow()
	d.startShowing()
}

// Hide starts an animated hide, or reverses an in-flight show.
func (d *Driver) Hide() {
	if d.stopped || !d.owner.IsActive() || d.visibility == domain.IsHiding || d.visibility == domain.Hidden {
		d.logger.Debug("hide ignored", ports.String("view", d.name), ports.Stringer("state", d.visibility))
		return
	}
	if d.debounce("hide", d.Hide) {
		return
	}

	if d.visibility == domain.IsShowing {
		d.showingTask.Stop()
		d.showingTask = nil
		d.issue(domain.ReverseShow)
		d.startHiding()
		return
	}

	d.issue(domain.Hide)
	d.selectOnHide()
	d.startHiding()
}

// Toggle hides when visible or showing, shows otherwise.
func (d *Driver) Toggle() {
	if d.visibility.ShowDirection() {
		d.Hide()
		return
	}
	d.Show()
}

// RunStartup executes a startup behaviour. Show and Hide start from the
// opposite extreme so the animated transition is not a no-op.
func (d *Driver) RunStartup(b domain.Behaviour) {
	switch b {
	case domain.BehaviourDisabled:
	case domain.BehaviourHide:
		d.force(domain.Visible)
		d.Hide()
	case domain.BehaviourShow:
		d.force(domain.Hidden)
		d.sched.AfterFrames("startup-show", DebounceFrames, d.Show)
	case domain.BehaviourInstantHide:
		d.force(domain.Visible)
		d.InstantHide()
	case domain.BehaviourInstantShow:
		d.force(domain.Hidden)
		d.InstantShow()
	default:
		panic(fmt.Errorf("%w: %d", domain.ErrInvalidBehaviour, int(b)))
	}
}

// Stop cancels all four tasks. Later calls to the transition methods are
// ignored.
func (d *Driver) Stop() {
	d.stopped = true
	d.cancelMonitors()
	d.cancelAutoHide()
	d.cancelDeactivate()
}

// debounce defers call by DebounceFrames when the visibility was written on
// the current frame, and reports whether it did.
func (d *Driver) debounce(op string, call func()) bool {
	if !d.changed || d.lastFrameChanged != d.sched.Frame() {
		return false
	}
	d.logger.Debug("transition deferred",
		ports.String("view", d.name),
		ports.String("op", op),
		ports.Uint64("frame", d.sched.Frame()),
	)
	d.sched.AfterFrames(op+"-debounce", DebounceFrames, call)
	return true
}

// issue broadcasts cmd and drives the three progress-driver pools.
func (d *Driver) issue(cmd domain.Command) {
	if !cmd.Valid() {
		panic(fmt.Errorf("%w: %d", domain.ErrInvalidCommand, int(cmd)))
	}
	if d.emitter != nil {
		d.emitter.OnCommandIssued(cmd)
	}
	d.executedFirstCommand = true
	d.previousCommand = cmd
	d.pools.PurgeAll()

	d.logger.Debug("command issued",
		ports.String("view", d.name),
		ports.Stringer("command", cmd),
	)

	show, hide, shared := &d.pools.Show, &d.pools.Hide, &d.pools.ShowHide
	switch cmd {
	case domain.Show:
		show.Each(func(p ports.ProgressDriver) { p.Play(domain.Forward) })
		hide.Each(func(p ports.ProgressDriver) { p.Stop() })
		shared.Each(func(p ports.ProgressDriver) { p.Play(domain.Forward) })
	case domain.Hide:
		show.Each(func(p ports.ProgressDriver) { p.Stop() })
		hide.Each(func(p ports.ProgressDriver) { p.Play(domain.Forward) })
		shared.Each(func(p ports.ProgressDriver) { p.Play(domain.Reverse) })
	case domain.InstantShow:
		show.Each(func(p ports.ProgressDriver) { p.SetProgressAtOne() })
		hide.Each(func(p ports.ProgressDriver) { p.Stop() })
		shared.Each(func(p ports.ProgressDriver) { p.SetProgressAtOne() })
	case domain.InstantHide:
		show.Each(func(p ports.ProgressDriver) { p.Stop() })
		hide.Each(func(p ports.ProgressDriver) { p.SetProgressAtOne() })
		// Zero is the hidden extreme of the shared axis.
		shared.Each(func(p ports.ProgressDriver) { p.SetProgressAtZero() })
	case domain.ReverseShow:
		show.Each(func(p ports.ProgressDriver) { p.Reverse() })
		shared.Each(func(p ports.ProgressDriver) { p.Reverse() })
	case domain.ReverseHide:
		hide.Each(func(p ports.ProgressDriver) { p.Reverse() })
		shared.Each(func(p ports.ProgressDriver) { p.Reverse() })
	}
}

// startShowing launches the showing monitor: IsShowing now, then from the
// next frame poll until nothing is active.
func (d *Driver) startShowing() {
	d.hidingTask.Stop()
	d.hidingTask = nil
	d.showingTask.Stop()
	d.cancelDeactivate()

	d.setVisibility(domain.IsShowing)
	d.logger.Debug("show started",
		ports.String("view", d.name),
		ports.Duration("estimate", d.EstimateShowDuration()),
	)
	d.showingTask = d.sched.Go("showing", d.monitor(domain.Visible, &d.showingTask))
}

// startHiding launches the hiding monitor, symmetric to startShowing.
func (d *Driver) startHiding() {
	d.cancelDeactivate()
	d.showingTask.Stop()
	d.showingTask = nil
	d.hidingTask.Stop()

	d.setVisibility(domain.IsHiding)
	d.logger.Debug("hide started",
		ports.String("view", d.name),
		ports.Duration("estimate", d.EstimateHideDuration()),
	)
	d.hidingTask = d.sched.Go("hiding", d.monitor(domain.Hidden, &d.hidingTask))
}

// monitor returns the step function of a monitor task that commits settled
// once every registered reaction and progress driver is idle. The scheduler
// first polls it on the next frame, which is the one-frame yield animators
// get to register. Stopping the task never commits.
func (d *Driver) monitor(settled domain.Visibility, handle **tick.Task) tick.StepFunc {
	return func() bool {
		if d.animating() {
			return false
		}
		*handle = nil
		d.setVisibility(settled)
		return true
	}
}

// animating reports whether any reaction in either registry, or any
// progress driver, is still active.
func (d *Driver) animating() bool {
	d.showReactions.Purge()
	d.hideReactions.Purge()
	if d.showReactions.AnyActive() || d.hideReactions.AnyActive() {
		return true
	}
	d.pools.PurgeAll()
	if d.pools.Empty() {
		return false
	}
	return d.pools.AnyActive()
}

func (d *Driver) cancelMonitors() {
	d.showingTask.Stop()
	d.showingTask = nil
	d.hidingTask.Stop()
	d.hidingTask = nil
}

func (d *Driver) enableSurface() {
	if d.surface != nil {
		d.surface.SetEnabled(true)
	}
	if d.raycaster != nil {
		d.raycaster.SetEnabled(true)
	}
}

func (d *Driver) selectOnShow() {
	if d.selector == nil {
		return
	}
	if d.settings.ClearSelectedOnShow {
		d.selector.ClearSelection()
	}
	if d.settings.AutoSelectAfterShow && d.settings.AutoSelectTarget != nil {
		d.selector.Select(d.settings.AutoSelectTarget)
	}
}

func (d *Driver) selectOnHide() {
	if d.selector != nil && d.settings.ClearSelectedOnHide {
		d.selector.ClearSelection()
	}
}

// localOwner stands in when no owner collaborator is configured.
type localOwner struct {
	active bool
}

func (o *localOwner) SetActive(active bool) { o.active = active }
func (o *localOwner) IsActive() bool        { return o.active }
