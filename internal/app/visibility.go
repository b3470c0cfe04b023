package app

import (
	"fmt"

	"github.com/CoderValencia/uiview/internal/domain"
	"github.com/CoderValencia/uiview/internal/ports"
)

// EventEmitter receives the lifecycle notifications of a view. Calls are
// synchronous, on the scheduler goroutine.
type EventEmitter interface {
	OnVisibilityChanged(current domain.Visibility)
	OnShowStarted()
	OnBecameVisible()
	OnHideStarted()
	OnBecameHidden()
	OnCommandIssued(cmd domain.Command)
}

// Visibility returns the current visibility state.
func (d *Driver) Visibility() domain.Visibility {
	return d.visibility
}

// LastFrameChanged returns the frame of the last visibility write and whether
// there has been one.
func (d *Driver) LastFrameChanged() (uint64, bool) {
	return d.lastFrameChanged, d.changed
}

// setVisibility is the only place the visibility state is written with
// notifications. It runs its side effects on every call, including when the
// value does not change.
func (d *Driver) setVisibility(state domain.Visibility) {
	if !state.Valid() {
		panic(fmt.Errorf("%w: %d", domain.ErrInvalidVisibility, int(state)))
	}

	previous := d.visibility
	d.lastFrameChanged = d.sched.Frame()
	d.changed = true
	d.visibility = state

	d.logger.Debug("visibility changed",
		ports.String("view", d.name),
		ports.Stringer("from", previous),
		ports.Stringer("to", state),
		ports.Uint64("frame", d.lastFrameChanged),
	)

	if d.emitter != nil {
		d.emitter.OnVisibilityChanged(state)
	}

	switch state {
	case domain.Visible:
		d.onVisible()
	case domain.Hidden:
		d.onHidden()
	case domain.IsShowing:
		if d.emitter != nil {
			d.emitter.OnShowStarted()
		}
	case domain.IsHiding:
		if d.emitter != nil {
			d.emitter.OnHideStarted()
		}
		d.cancelAutoHide()
	}
}

// force writes the state without notifications or side effects. Startup
// behaviours use it to pick the extreme a transition starts from.
func (d *Driver) force(state domain.Visibility) {
	if !state.Valid() {
		panic(fmt.Errorf("%w: %d", domain.ErrInvalidVisibility, int(state)))
	}
	d.visibility = state
}

func (d *Driver) onVisible() {
	if d.emitter != nil {
		d.emitter.OnBecameVisible()
	}
	if d.settings.AutoHideAfterShow {
		d.armAutoHide()
	}
}

// armAutoHide (re)starts the auto-hide timer from now.
func (d *Driver) armAutoHide() {
	d.cancelAutoHide()
	d.autoHideTask = d.sched.AfterDuration("auto-hide", d.settings.AutoHideAfterShowDelay, func() {
		d.autoHideTask = nil
		d.logger.Debug("auto-hide fired", ports.String("view", d.name))
		d.Hide()
	})
}

func (d *Driver) onHidden() {
	if d.emitter != nil {
		d.emitter.OnBecameHidden()
	}
	if d.settings.DisableSurfaceWhenHidden && d.surface != nil {
		d.surface.SetEnabled(false)
	}
	if d.settings.DisableRaycastWhenHidden && d.raycaster != nil {
		d.raycaster.SetEnabled(false)
	}
	if d.settings.DisableOwnerWhenHidden {
		d.cancelDeactivate()
		d.deactivateTask = d.sched.AfterFrames("deactivate", DeactivateDelayFrames, func() {
			d.deactivateTask = nil
			d.owner.SetActive(false)
		})
	}
}

func (d *Driver) cancelAutoHide() {
	d.autoHideTask.Stop()
	d.autoHideTask = nil
}

func (d *Driver) cancelDeactivate() {
	d.deactivateTask.Stop()
	d.deactivateTask = nil
}
