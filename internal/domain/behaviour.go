package domain

import (
	"fmt"
	"strings"
)

// Behaviour selects what a view does the first time it is started.
type Behaviour int

const (
	BehaviourDisabled Behaviour = iota
	BehaviourShow
	BehaviourHide
	BehaviourInstantShow
	BehaviourInstantHide
)

var behaviourNames = map[Behaviour]string{
	BehaviourDisabled:    "disabled",
	BehaviourShow:        "show",
	BehaviourHide:        "hide",
	BehaviourInstantShow: "instant_show",
	BehaviourInstantHide: "instant_hide",
}

// String returns the config-file spelling of the behaviour.
func (b Behaviour) String() string {
	if name, ok := behaviourNames[b]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether b is a known behaviour.
func (b Behaviour) Valid() bool {
	_, ok := behaviourNames[b]
	return ok
}

// ParseBehaviour parses a behaviour name. Matching ignores case, and dashes
// are accepted in place of underscores. The empty string means disabled.
func ParseBehaviour(s string) (Behaviour, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if norm == "" {
		return BehaviourDisabled, nil
	}
	for b, name := range behaviourNames {
		if name == norm {
			return b, nil
		}
	}
	return BehaviourDisabled, fmt.Errorf("%w: %q", ErrInvalidBehaviour, s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Behaviour) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBehaviour, int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Behaviour) UnmarshalText(text []byte) error {
	parsed, err := ParseBehaviour(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
