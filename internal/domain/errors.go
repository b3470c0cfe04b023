package domain

import "errors"

// Domain errors. Invalid enum values inside the core are programming errors
// and are raised as panics wrapping these sentinels; everything reachable from
// user input (config files, scenario scripts) returns them instead.
var (
	// ErrInvalidVisibility is raised for a Visibility outside the four known states.
	ErrInvalidVisibility = errors.New("uiview: invalid visibility state")

	// ErrInvalidCommand is raised for a Command outside the six known commands.
	ErrInvalidCommand = errors.New("uiview: invalid transition command")

	// ErrInvalidBehaviour is returned for an unknown startup behaviour.
	ErrInvalidBehaviour = errors.New("uiview: invalid startup behaviour")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("uiview: invalid configuration")

	// ErrClosed is returned when a closed view is started again.
	ErrClosed = errors.New("uiview: view closed")
)
