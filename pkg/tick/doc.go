// Package tick provides the cooperative fixed-tick scheduler uiview runs on.
//
// A Scheduler owns a frame counter and a list of tasks. Each call to Step
// advances the frame, runs work handed over with Post, then polls every task
// once in start order. A task that reports done, or that was stopped, is
// dropped. Tasks started while a frame is being processed are first polled on
// the next frame, so "yield one frame, then poll" is the natural shape of a
// monitor task.
//
// All methods except Post, Frame-independent accessors and Run's context are
// meant to be called from the goroutine that steps the scheduler. Tests step
// it by hand:
//
//	s := tick.New(tick.WithInterval(100 * time.Millisecond))
//	s.AfterFrames("hello", 2, func() { fmt.Println("two frames later") })
//	s.StepN(2)
//
// Programs hand it to Run, which steps on a real-time ticker until the
// context is cancelled.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
package tick
