package tick

// StepFunc is polled once per frame until it reports done.
type StepFunc func() (done bool)

// Task is a handle to scheduled work. The zero of *Task (nil) is a valid,
// never-running handle, so callers can keep optional handles in fields and
// Stop them unconditionally.
type Task struct {
	id      uint64
	name    string
	step    StepFunc
	started uint64
	stopped bool
	done    bool
}

// Name returns the name the task was started with.
func (t *Task) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// StartedAt returns the frame the task was started on.
func (t *Task) StartedAt() uint64 {
	if t == nil {
		return 0
	}
	return t.started
}

// Stop cancels the task. It is never polled again. Stopping a finished or
// nil task is a no-op.
func (t *Task) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
}

// Running reports whether the task is still scheduled.
func (t *Task) Running() bool {
	return t != nil && !t.stopped && !t.done
}

// Done reports whether the task ran to completion (as opposed to being stopped).
func (t *Task) Done() bool {
	return t != nil && t.done
}
