// Package ports defines the interfaces (ports) that connect the view core to
// the collaborators it drives but does not implement.
//
// # Port Interfaces
//
//   - [Reaction]: an externally owned animation unit (activity flag + timing)
//   - [ProgressDriver]: a directionally controllable progress source
//   - [Surface]: the rendering surface toggled on show/hide
//   - [Raycaster]: the input-routing surface toggled on show/hide
//   - [Owner]: the owning object activated on show and deactivated when hidden
//   - [Selector]: the selection subsystem cleared/selected around transitions
//   - [Logger]: structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces;
// pkg/view re-exports them so callers can implement them.
package ports
