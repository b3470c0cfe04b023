package progress

import (
	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

// Animator owns a show reaction and a hide reaction and plays them in
// response to the commands a view issues.
type Animator struct {
	view.BaseEventHandler

	name string
	show *Reaction
	hide *Reaction

	view        *view.View
	unsubscribe func()
}

// NewAnimator creates a detached animator. opts apply to both reactions.
func NewAnimator(name string, sched *tick.Scheduler, show, hide view.Timing, opts ...Option) *Animator {
	return &Animator{
		name: name,
		show: NewReaction(sched, show, append([]Option{WithName(name + "-show")}, opts...)...),
		hide: NewReaction(sched, hide, append([]Option{WithName(name + "-hide")}, opts...)...),
	}
}

// Name returns the animator name.
func (a *Animator) Name() string { return a.name }

// ShowReaction returns the reaction played on show.
func (a *Animator) ShowReaction() *Reaction { return a.show }

// HideReaction returns the reaction played on hide.
func (a *Animator) HideReaction() *Reaction { return a.hide }

// Attach registers the reactions with v and subscribes to its commands.
// An animator is attached to at most one view; attaching again moves it.
func (a *Animator) Attach(v *view.View) {
	a.Detach()
	a.view = v
	v.ShowReactions().Register(a.show)
	v.HideReactions().Register(a.hide)
	a.unsubscribe = v.Subscribe(a)
}

// Detach stops both reactions and removes them from the view.
func (a *Animator) Detach() {
	if a.view == nil {
		return
	}
	a.show.Stop()
	a.hide.Stop()
	a.view.ShowReactions().Unregister(a.show)
	a.view.HideReactions().Unregister(a.hide)
	a.unsubscribe()
	a.view = nil
	a.unsubscribe = nil
}

// OnCommandIssued plays, reverses or snaps the reactions.
func (a *Animator) OnCommandIssued(cmd view.Command) {
	switch cmd {
	case view.CommandShow:
		a.hide.Stop()
		a.show.Play(view.Forward)
	case view.CommandHide:
		a.show.Stop()
		a.hide.Play(view.Forward)
	case view.CommandInstantShow:
		a.hide.Stop()
		a.show.SetProgressAtOne()
	case view.CommandInstantHide:
		a.show.Stop()
		a.hide.SetProgressAtOne()
	case view.CommandReverseShow:
		a.show.Reverse()
	case view.CommandReverseHide:
		a.hide.Reverse()
	}
}

var _ view.EventHandler = (*Animator)(nil)
