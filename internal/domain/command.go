package domain

// Command is the directive issued to every registered animation and progress
// driver on a transition step.
type Command int

const (
	Show Command = iota
	Hide
	InstantShow
	InstantHide
	// ReverseShow is issued when a running show is interrupted by a hide.
	ReverseShow
	// ReverseHide is issued when a running hide is interrupted by a show.
	ReverseHide
)

// String returns a human-readable representation of the command.
func (c Command) String() string {
	switch c {
	case Show:
		return "Show"
	case Hide:
		return "Hide"
	case InstantShow:
		return "InstantShow"
	case InstantHide:
		return "InstantHide"
	case ReverseShow:
		return "ReverseShow"
	case ReverseHide:
		return "ReverseHide"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the six known commands.
func (c Command) Valid() bool {
	return c >= Show && c <= ReverseHide
}

// Direction is the play direction of a progress driver.
type Direction int

const (
	Forward Direction = iota
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "Reverse"
	}
	return "Forward"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Reverse {
		return Forward
	}
	return Reverse
}
