package view

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderValencia/uiview/pkg/tick"
)

type recorder struct {
	BaseEventHandler
	events []string
}

func (r *recorder) OnVisibilityChanged(current Visibility) {
	r.events = append(r.events, current.String())
}

func (r *recorder) OnCommandIssued(cmd Command) {
	r.events = append(r.events, "cmd:"+cmd.String())
}

type fakePlugin struct {
	name    string
	initErr error
	log     *[]string
	cfg     PluginConfig
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(_ context.Context, cfg PluginConfig) error {
	*p.log = append(*p.log, "init:"+p.name)
	p.cfg = cfg
	return p.initErr
}

func (p *fakePlugin) Shutdown(context.Context) error {
	*p.log = append(*p.log, "shutdown:"+p.name)
	return nil
}

type fakeReaction struct {
	active bool
	timing Timing
}

func (r *fakeReaction) IsActive() bool { return r.active }
func (r *fakeReaction) Timing() Timing { return r.timing }

func newSched() *tick.Scheduler {
	return tick.New(tick.WithInterval(100 * time.Millisecond))
}

func TestNew_Defaults(t *testing.T) {
	v, err := New(newSched(), Config{})
	require.NoError(t, err)

	assert.Equal(t, Visible, v.Visibility())
	assert.Equal(t, "view", v.Name())
	_, err = uuid.Parse(v.ID())
	assert.NoError(t, err)
	_, issued := v.LastCommand()
	assert.False(t, issued)
	assert.True(t, v.Owner().IsActive())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg := DefaultConfig()
	cfg.AutoHideAfterShowDelay = -time.Second
	_, err = New(newSched(), cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.StartupBehaviour = Behaviour(42)
	_, err = New(newSched(), cfg)
	assert.ErrorIs(t, err, ErrInvalidBehaviour)
}

func TestStart_RunsStartupBehaviourOnce(t *testing.T) {
	tests := []struct {
		behaviour Behaviour
		want      Visibility
		frames    int
	}{
		{BehaviourDisabled, Visible, 0},
		{BehaviourInstantHide, Hidden, 0},
		{BehaviourInstantShow, Visible, 0},
		{BehaviourHide, Hidden, 3},
		{BehaviourShow, Visible, 5},
	}

	for _, tt := range tests {
		t.Run(tt.behaviour.String(), func(t *testing.T) {
			s := newSched()
			cfg := DefaultConfig()
			cfg.StartupBehaviour = tt.behaviour
			v, err := New(s, cfg)
			require.NoError(t, err)

			require.NoError(t, v.Start(context.Background()))
			s.StepN(tt.frames)
			assert.Equal(t, tt.want, v.Visibility())

			v.InstantToggle()
			toggled := v.Visibility()
			require.NoError(t, v.Start(context.Background()))
			assert.Equal(t, toggled, v.Visibility(), "second Start is a no-op")
		})
	}
}

func TestStart_AfterClose(t *testing.T) {
	v, err := New(newSched(), DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, v.Close(context.Background()))
	assert.True(t, v.Closed())
	assert.ErrorIs(t, v.Start(context.Background()), ErrClosed)
	assert.NoError(t, v.Close(context.Background()), "Close is idempotent")
}

func TestClose_StopsTransitions(t *testing.T) {
	s := newSched()
	v, err := New(s, DefaultConfig())
	require.NoError(t, err)
	r := &fakeReaction{active: true}
	v.HideReactions().Register(r)

	s.Step()
	v.Hide()
	require.Equal(t, IsHiding, v.Visibility())

	require.NoError(t, v.Close(context.Background()))
	r.active = false
	s.StepN(5)
	assert.Equal(t, IsHiding, v.Visibility(), "closing never commits")

	v.Show()
	assert.Equal(t, IsHiding, v.Visibility(), "closed view ignores commands")
}

func TestPlugins_Lifecycle(t *testing.T) {
	var calls []string
	s := newSched()
	a := &fakePlugin{name: "a", log: &calls}
	b := &fakePlugin{name: "b", log: &calls}

	v, err := New(s, DefaultConfig(), WithPlugin(a), WithPlugin(b), WithPlugin(nil))
	require.NoError(t, err)
	require.NoError(t, v.Start(context.Background()))
	require.NoError(t, v.Close(context.Background()))

	assert.Equal(t, []string{"init:a", "init:b", "shutdown:b", "shutdown:a"}, calls)
	assert.Same(t, v, a.cfg.View)
	assert.Same(t, s, a.cfg.Scheduler)
	assert.NotNil(t, a.cfg.Logger)
}

func TestPlugins_InitFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	a := &fakePlugin{name: "a", log: &calls}
	b := &fakePlugin{name: "b", log: &calls, initErr: boom}
	c := &fakePlugin{name: "c", log: &calls}

	v, err := New(newSched(), DefaultConfig(), WithPlugin(a), WithPlugin(b), WithPlugin(c))
	require.NoError(t, err)

	err = v.Start(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "initialize plugin b")

	require.NoError(t, v.Close(context.Background()))
	assert.Equal(t, []string{"init:a", "init:b", "shutdown:a"}, calls)
}

func TestSubscribe(t *testing.T) {
	s := newSched()
	first := &recorder{}
	v, err := New(s, DefaultConfig(), WithEventHandler(first))
	require.NoError(t, err)

	second := &recorder{}
	unsubscribe := v.Subscribe(second)

	v.InstantHide()
	want := []string{"cmd:InstantHide", "IsHiding", "Hidden"}
	assert.Equal(t, want, first.events)
	assert.Equal(t, want, second.events)

	unsubscribe()
	s.Step()
	v.InstantShow()
	assert.Len(t, first.events, 6)
	assert.Len(t, second.events, 3)

	v.Subscribe(nil)()
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	v, err := New(newSched(), DefaultConfig())
	require.NoError(t, err)

	later := &recorder{}
	var unsubscribe func()
	once := &onceHandler{fn: func() { unsubscribe() }}
	unsubscribe = v.Subscribe(once)
	v.Subscribe(later)

	v.InstantHide()
	assert.Equal(t, 1, once.calls)
	assert.Equal(t, []string{"cmd:InstantHide", "IsHiding", "Hidden"}, later.events)
}

type onceHandler struct {
	BaseEventHandler
	fn    func()
	calls int
}

func (h *onceHandler) OnCommandIssued(Command) {
	h.calls++
	h.fn()
}

func TestAnimatedShow_WaitsForRegisteredReactions(t *testing.T) {
	s := newSched()
	cfg := DefaultConfig()
	cfg.StartupBehaviour = BehaviourInstantHide
	v, err := New(s, cfg)
	require.NoError(t, err)
	require.NoError(t, v.Start(context.Background()))
	s.Step()

	r := &fakeReaction{active: true, timing: Timing{Duration: 300 * time.Millisecond}}
	v.ShowReactions().Register(r)
	assert.Equal(t, 300*time.Millisecond, v.EstimateShowDuration())

	v.Show()
	assert.True(t, v.InTransition())
	assert.True(t, v.IsVisible())
	s.StepN(10)
	assert.Equal(t, IsShowing, v.Visibility())

	r.active = false
	s.Step()
	assert.Equal(t, Visible, v.Visibility())
	assert.False(t, v.InTransition())
}

func TestShowThenHideSameFrame_Debounced(t *testing.T) {
	s := newSched()
	cfg := DefaultConfig()
	cfg.StartupBehaviour = BehaviourInstantHide
	v, err := New(s, cfg)
	require.NoError(t, err)
	require.NoError(t, v.Start(context.Background()))
	s.Step()

	v.Show()
	v.Hide()
	assert.Equal(t, IsShowing, v.Visibility(), "hide deferred")
	frame, ok := v.LastFrameChanged()
	require.True(t, ok)
	assert.Equal(t, s.Frame(), frame)

	require.True(t, s.StepUntil(func() bool { return v.Visibility() == Hidden }, 20))
}

func TestAutoHide(t *testing.T) {
	s := newSched()
	cfg := DefaultConfig()
	cfg.AutoHideAfterShow = true
	cfg.AutoHideAfterShowDelay = 2 * time.Second
	cfg.StartupBehaviour = BehaviourInstantHide
	v, err := New(s, cfg)
	require.NoError(t, err)
	require.NoError(t, v.Start(context.Background()))

	s.Step()
	v.InstantShow()
	assert.True(t, v.AutoHidePending())

	s.StepN(19)
	assert.Equal(t, Visible, v.Visibility())
	s.Step()
	assert.Equal(t, IsHiding, v.Visibility())
}

func TestApplyConfig(t *testing.T) {
	s := newSched()
	cfg := DefaultConfig()
	cfg.Name = "menu"
	v, err := New(s, cfg)
	require.NoError(t, err)

	next := DefaultConfig()
	next.Name = "renamed"
	next.AutoHideAfterShow = true
	require.NoError(t, v.ApplyConfig(next))
	assert.Equal(t, "menu", v.Config().Name)
	assert.True(t, v.Config().AutoHideAfterShow)
	assert.Equal(t, DefaultAutoHideDelay, v.Config().AutoHideAfterShowDelay)

	bad := DefaultConfig()
	bad.AutoHideAfterShowDelay = -1
	assert.ErrorIs(t, v.ApplyConfig(bad), ErrInvalidConfig)
	assert.True(t, v.Config().AutoHideAfterShow, "rejected config is not applied")

	s.Step()
	v.InstantHide()
	s.Step()
	v.InstantShow()
	assert.True(t, v.AutoHidePending())

	off := v.Config()
	off.AutoHideAfterShow = false
	require.NoError(t, v.ApplyConfig(off))
	assert.False(t, v.AutoHidePending())
}

func TestApplyConfig_EnablingAutoHideWhileVisible(t *testing.T) {
	s := newSched()
	v, err := New(s, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, Visible, v.Visibility())

	next := DefaultConfig()
	next.AutoHideAfterShow = true
	next.AutoHideAfterShowDelay = 500 * time.Millisecond
	require.NoError(t, v.ApplyConfig(next))
	assert.True(t, v.AutoHidePending())

	ok := s.StepUntil(func() bool { return v.Visibility() == Hidden }, 20)
	assert.True(t, ok)
}

func TestApplyConfig_AfterClose(t *testing.T) {
	v, err := New(newSched(), DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, v.Close(context.Background()))

	next := DefaultConfig()
	next.AutoHideAfterShow = true
	assert.ErrorIs(t, v.ApplyConfig(next), ErrClosed)
	assert.Equal(t, DefaultConfig(), v.Config())
	assert.False(t, v.AutoHidePending())
}

func TestNew_KeepsZeroAutoHideDelay(t *testing.T) {
	s := newSched()
	cfg := DefaultConfig()
	cfg.AutoHideAfterShow = true
	cfg.AutoHideAfterShowDelay = 0
	v, err := New(s, cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), v.Config().AutoHideAfterShowDelay)

	s.Step()
	v.InstantHide()
	s.Step()
	v.InstantShow()
	s.Step()
	assert.Equal(t, IsHiding, v.Visibility(), "zero delay hides on the next frame")
}

type fakeProgress struct {
	reaction *fakeReaction
	calls    []string
}

func (f *fakeProgress) Play(d Direction)   { f.calls = append(f.calls, "Play("+d.String()+")") }
func (f *fakeProgress) Reverse()           { f.calls = append(f.calls, "Reverse") }
func (f *fakeProgress) Stop()              { f.calls = append(f.calls, "Stop") }
func (f *fakeProgress) SetProgressAtOne()  { f.calls = append(f.calls, "One") }
func (f *fakeProgress) SetProgressAtZero() { f.calls = append(f.calls, "Zero") }
func (f *fakeProgress) Reaction() Reaction { return f.reaction }

func TestProgressDrivers(t *testing.T) {
	v, err := New(newSched(), DefaultConfig())
	require.NoError(t, err)

	shared := &fakeProgress{reaction: &fakeReaction{timing: Timing{StartDelay: time.Second, Duration: 500 * time.Millisecond}}}
	require.NoError(t, v.AddProgressDriver(PoolShowHide, shared))
	assert.ErrorIs(t, v.AddProgressDriver(PoolKind(9), shared), ErrInvalidConfig)

	assert.Equal(t, 1500*time.Millisecond, v.EstimateShowDuration())
	assert.Equal(t, 500*time.Millisecond, v.EstimateHideDuration())
	assert.Len(t, v.ProgressDrivers(PoolShowHide), 1)
	assert.Nil(t, v.ProgressDrivers(PoolKind(9)))

	v.InstantHide()
	assert.Equal(t, []string{"Zero"}, shared.calls)

	assert.True(t, v.RemoveProgressDriver(PoolShowHide, shared))
	assert.False(t, v.RemoveProgressDriver(PoolShowHide, shared))
	assert.False(t, v.RemoveProgressDriver(PoolKind(9), shared))
}

type switchRecorder struct{ states []bool }

func (s *switchRecorder) SetEnabled(enabled bool) { s.states = append(s.states, enabled) }

type selectorRecorder struct {
	cleared  int
	selected []any
}

func (s *selectorRecorder) ClearSelection()   { s.cleared++ }
func (s *selectorRecorder) Select(target any) { s.selected = append(s.selected, target) }

func TestCollaborators(t *testing.T) {
	s := newSched()
	surface := &switchRecorder{}
	raycaster := &switchRecorder{}
	selector := &selectorRecorder{}

	cfg := DefaultConfig()
	cfg.ClearSelectedOnShow = true
	cfg.AutoSelectAfterShow = true
	v, err := New(s, cfg,
		WithSurface(surface),
		WithRaycaster(raycaster),
		WithSelector(selector, "play-button"),
	)
	require.NoError(t, err)

	v.InstantHide()
	assert.Equal(t, []bool{false}, surface.states)
	assert.Equal(t, []bool{false}, raycaster.states)

	s.StepN(DeactivateDelayFrames)
	assert.False(t, v.Owner().IsActive())

	v.InstantShow()
	assert.Equal(t, []bool{false, true}, surface.states)
	assert.True(t, v.Owner().IsActive())
	assert.Equal(t, 1, selector.cleared)
	assert.Equal(t, []any{"play-button"}, selector.selected)
}

func TestIsVersionCompatible(t *testing.T) {
	tests := []struct {
		version, minVersion string
		want                bool
	}{
		{"1.0.0", "1.0.0", true},
		{"1.2.0", "1.1.9", true},
		{"2.0.0", "1.9.9", true},
		{"1.0.0", "1.0.1", false},
		{"0.9.0", "1.0.0", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s>=%s", tt.version, tt.minVersion), func(t *testing.T) {
			assert.Equal(t, tt.want, isVersionCompatible(tt.version, tt.minVersion))
		})
	}
	assert.NoError(t, validateModuleVersions())
}
