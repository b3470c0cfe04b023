package view

import (
	"github.com/CoderValencia/uiview/internal/app"
	"github.com/CoderValencia/uiview/internal/domain"
	"github.com/CoderValencia/uiview/internal/ports"
	"github.com/CoderValencia/uiview/pkg/log"
)

// Re-exported domain types. Callers never import internal packages.
type (
	// Visibility is the state of a view.
	Visibility = domain.Visibility

	// Command is a transition command broadcast to animators.
	Command = domain.Command

	// Direction is the play direction of a progress driver.
	Direction = domain.Direction

	// Behaviour selects what Start does.
	Behaviour = domain.Behaviour

	// Timing is the declared delay and duration of a reaction.
	Timing = domain.Timing

	// Range is a random duration range.
	Range = domain.Range
)

// Visibility states.
const (
	Visible   = domain.Visible
	Hidden    = domain.Hidden
	IsShowing = domain.IsShowing
	IsHiding  = domain.IsHiding
)

// Transition commands.
const (
	CommandShow        = domain.Show
	CommandHide        = domain.Hide
	CommandInstantShow = domain.InstantShow
	CommandInstantHide = domain.InstantHide
	CommandReverseShow = domain.ReverseShow
	CommandReverseHide = domain.ReverseHide
)

// Play directions.
const (
	Forward = domain.Forward
	Reverse = domain.Reverse
)

// Startup behaviours.
const (
	BehaviourDisabled    = domain.BehaviourDisabled
	BehaviourShow        = domain.BehaviourShow
	BehaviourHide        = domain.BehaviourHide
	BehaviourInstantShow = domain.BehaviourInstantShow
	BehaviourInstantHide = domain.BehaviourInstantHide
)

// ParseBehaviour parses a startup behaviour name such as "instant_hide".
func ParseBehaviour(s string) (Behaviour, error) {
	return domain.ParseBehaviour(s)
}

// Errors.
var (
	ErrInvalidVisibility = domain.ErrInvalidVisibility
	ErrInvalidCommand    = domain.ErrInvalidCommand
	ErrInvalidBehaviour  = domain.ErrInvalidBehaviour
	ErrInvalidConfig     = domain.ErrInvalidConfig
	ErrClosed            = domain.ErrClosed
)

// Collaborator interfaces.
type (
	// Reaction is an animation unit owned by an external animator.
	Reaction = ports.Reaction

	// Releasable is implemented by reactions that can be released by their
	// owner without unregistering.
	Releasable = ports.Releasable

	// ProgressDriver is a progress source the view commands directly.
	ProgressDriver = ports.ProgressDriver

	// Surface is the rendering surface of a view.
	Surface = ports.Surface

	// Raycaster routes input to a view.
	Raycaster = ports.Raycaster

	// Owner is the object a view belongs to.
	Owner = ports.Owner

	// Selector is the selection subsystem.
	Selector = ports.Selector
)

// Registry holds the reactions of one direction.
type Registry = app.Registry

// PoolKind names a progress-driver pool.
type PoolKind = app.PoolKind

// Progress-driver pools.
const (
	PoolShow     = app.PoolShow
	PoolHide     = app.PoolHide
	PoolShowHide = app.PoolShowHide
)

// Timing constants, in frames.
const (
	DebounceFrames        = app.DebounceFrames
	DeactivateDelayFrames = app.DeactivateDelayFrames
)

// Logger is the interface for structured logging.
type Logger = log.Logger

// LogField is a structured log field.
type LogField = log.Field
