package ports

import (
	"reflect"

	"github.com/CoderValencia/uiview/internal/domain"
)

// Reaction is an animation unit owned by an external animator. The core only
// reads its activity flag and its declared timing.
//
// Reactions are stored by identity, so implementations must be comparable
// (pointer receivers are the normal case).
type Reaction interface {
	// IsActive reports whether the reaction is delaying or animating.
	IsActive() bool

	// Timing returns the declared delay/duration metadata.
	Timing() domain.Timing
}

// Releasable is implemented by reactions whose owner can go away without
// unregistering. Released entries are purged like nil entries.
type Releasable interface {
	Released() bool
}

// ProgressDriver is a progress source the core controls directly.
type ProgressDriver interface {
	// Play starts from the beginning of the given direction.
	Play(direction domain.Direction)

	// Reverse turns an in-flight play around from its current progress.
	Reverse()

	// Stop halts playback at the current progress.
	Stop()

	// SetProgressAtOne stops and snaps to full progress.
	SetProgressAtOne()

	// SetProgressAtZero stops and snaps to zero progress.
	SetProgressAtZero()

	// Reaction returns the underlying timing reaction, or nil.
	Reaction() Reaction
}

// IsGone reports whether a registered entry should be purged: it is nil,
// including a typed nil pointer held in the interface, or it has been
// released by its owner. Released is never called on a nil receiver.
func IsGone(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return true
		}
	}
	if r, ok := v.(Releasable); ok {
		return r.Released()
	}
	return false
}
