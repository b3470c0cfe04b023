// Package domain contains the core value types of uiview.
//
// It has no dependencies on the scheduler, logging or any collaborator and
// holds only the closed enumerations of the visibility state machine and the
// timing metadata that animations declare.
//
// # Types
//
//   - [Visibility]: Visible, Hidden and the transient IsShowing/IsHiding states
//   - [Command]: the directive broadcast to animations on each transition step
//   - [Direction]: play direction of a progress driver
//   - [Behaviour]: what a view does the first time it is started
//   - [Timing]: declared delay/duration metadata of a reaction
package domain
