package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/CoderValencia/uiview/internal/domain"
	"github.com/CoderValencia/uiview/internal/ports"
	"github.com/CoderValencia/uiview/pkg/tick"
)

// fakeReaction is a hand-driven reaction.
type fakeReaction struct {
	active   bool
	released bool
	timing   domain.Timing
}

func (r *fakeReaction) IsActive() bool        { return r.active }
func (r *fakeReaction) Timing() domain.Timing { return r.timing }
func (r *fakeReaction) Released() bool        { return r.released }

// fakeDriver records the calls made on a progress driver.
type fakeDriver struct {
	calls    []string
	reaction *fakeReaction
}

func (f *fakeDriver) Play(direction domain.Direction) {
	f.calls = append(f.calls, "Play("+direction.String()+")")
}
func (f *fakeDriver) Reverse()           { f.calls = append(f.calls, "Reverse") }
func (f *fakeDriver) Stop()              { f.calls = append(f.calls, "Stop") }
func (f *fakeDriver) SetProgressAtOne()  { f.calls = append(f.calls, "One") }
func (f *fakeDriver) SetProgressAtZero() { f.calls = append(f.calls, "Zero") }
func (f *fakeDriver) Reaction() ports.Reaction {
	if f.reaction == nil {
		return nil
	}
	return f.reaction
}

func (f *fakeDriver) reset() { f.calls = nil }

// recorder captures notifications tagged with the frame they fired on.
type recorder struct {
	sched    *tick.Scheduler
	events   []string
	commands []domain.Command
	frames   []uint64
}

func (r *recorder) add(event string) {
	r.events = append(r.events, event)
}

func (r *recorder) OnVisibilityChanged(current domain.Visibility) {
	r.add("changed:" + current.String())
}
func (r *recorder) OnShowStarted()   { r.add("show-started") }
func (r *recorder) OnBecameVisible() { r.add("became-visible") }
func (r *recorder) OnHideStarted()   { r.add("hide-started") }
func (r *recorder) OnBecameHidden()  { r.add("became-hidden") }
func (r *recorder) OnCommandIssued(cmd domain.Command) {
	r.commands = append(r.commands, cmd)
	r.frames = append(r.frames, r.sched.Frame())
	r.add("command:" + cmd.String())
}

// lifecycle returns only the four lifecycle notifications.
func (r *recorder) lifecycle() []string {
	var out []string
	for _, e := range r.events {
		switch e {
		case "show-started", "became-visible", "hide-started", "became-hidden":
			out = append(out, e)
		}
	}
	return out
}

func (r *recorder) reset() {
	r.events = nil
	r.commands = nil
	r.frames = nil
}

type fakeSwitch struct {
	enabled bool
	calls   int
}

func (s *fakeSwitch) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.calls++
}

type fakeOwner struct {
	active bool
	calls  []bool
}

func (o *fakeOwner) SetActive(active bool) {
	o.active = active
	o.calls = append(o.calls, active)
}
func (o *fakeOwner) IsActive() bool { return o.active }

type fakeSelector struct {
	cleared  int
	selected []any
}

func (s *fakeSelector) ClearSelection()   { s.cleared++ }
func (s *fakeSelector) Select(target any) { s.selected = append(s.selected, target) }

// harness bundles a driver with its scheduler and recorder.
type harness struct {
	sched *tick.Scheduler
	rec   *recorder
	d     *Driver
}

func newHarness(t *testing.T, settings Settings, collab Collaborators) *harness {
	t.Helper()
	sched := tick.New(tick.WithInterval(100 * time.Millisecond))
	rec := &recorder{sched: sched}
	d := NewDriver("test", sched, settings, collab, nil, rec)
	return &harness{sched: sched, rec: rec, d: d}
}

// hidden settles the driver in Hidden, steps past the frame of the change
// and clears the recorder.
func (h *harness) hidden() *harness {
	h.sched.Step()
	h.d.InstantHide()
	h.sched.Step()
	h.rec.reset()
	return h
}

// visible settles the driver in Visible via an instant show, the same way.
func (h *harness) visible() *harness {
	h.hidden()
	h.d.InstantShow()
	h.sched.Step()
	h.rec.reset()
	return h
}

// requirePanicIs asserts fn panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	require.True(t, errors.Is(err, target), fmt.Sprintf("panic %v is not %v", err, target))
}
