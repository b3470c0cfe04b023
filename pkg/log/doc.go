// Package log provides the logging abstraction used by uiview components.
//
// Views, the tick scheduler and the plugins only depend on the Logger
// interface defined here. A zerolog adapter is provided for real output and
// a no-op logger is provided for tests and for callers that do not care.
//
// # Usage
//
//	logger := log.NewZerologAdapter()
//	v, err := view.New(sched, cfg, view.WithLogger(logger))
//
// Scope a logger to one component with With:
//
//	child := logger.With(log.String("view", "inventory"))
//
// # Custom Loggers
//
// Implement the Logger interface to integrate with an existing logging
// setup:
//
//	type MyLogger struct { ... }
//
//	func (l *MyLogger) Debug(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Info(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Warn(msg string, fields ...log.Field) { ... }
//	func (l *MyLogger) Error(msg string, fields ...log.Field) { ... }
//
// # Version
//
// Current version: 1.1.0
// Minimum compatible version: 1.0.0
package log
