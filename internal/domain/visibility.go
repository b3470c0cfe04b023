package domain

// Visibility is the canonical state of a view. Exactly one value is current
// at any time.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
	IsShowing
	IsHiding
)

// String returns a human-readable representation of the state.
func (v Visibility) String() string {
	switch v {
	case Visible:
		return "Visible"
	case Hidden:
		return "Hidden"
	case IsShowing:
		return "IsShowing"
	case IsHiding:
		return "IsHiding"
	default:
		return "Unknown"
	}
}

// Valid reports whether v is one of the four known states.
func (v Visibility) Valid() bool {
	return v >= Visible && v <= IsHiding
}

// IsSettled reports whether no animation is in flight.
func (v Visibility) IsSettled() bool {
	return v == Visible || v == Hidden
}

// IsTransient reports whether a show or hide is in flight.
func (v Visibility) IsTransient() bool {
	return v == IsShowing || v == IsHiding
}

// ShowDirection reports whether v is Visible or on its way there.
func (v Visibility) ShowDirection() bool {
	return v == Visible || v == IsShowing
}
