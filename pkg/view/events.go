package view

// EventHandler receives view notifications. Methods are called synchronously
// on the scheduler goroutine and should return quickly.
type EventHandler interface {
	// OnVisibilityChanged is called on every state write, before the
	// state-specific notification, even when the state did not change.
	OnVisibilityChanged(current Visibility)

	// OnShowStarted is called when the view enters IsShowing.
	OnShowStarted()

	// OnBecameVisible is called when the view settles Visible.
	OnBecameVisible()

	// OnHideStarted is called when the view enters IsHiding.
	OnHideStarted()

	// OnBecameHidden is called when the view settles Hidden.
	OnBecameHidden()

	// OnCommandIssued is called before the progress drivers are commanded.
	OnCommandIssued(cmd Command)
}

// BaseEventHandler provides no-op implementations of all EventHandler
// methods. Embed it to implement only the events you need.
type BaseEventHandler struct{}

func (BaseEventHandler) OnVisibilityChanged(Visibility) {}
func (BaseEventHandler) OnShowStarted()                 {}
func (BaseEventHandler) OnBecameVisible()               {}
func (BaseEventHandler) OnHideStarted()                 {}
func (BaseEventHandler) OnBecameHidden()                {}
func (BaseEventHandler) OnCommandIssued(Command)        {}

var _ EventHandler = BaseEventHandler{}

type subscription struct {
	id      uint64
	handler EventHandler
}

// fanout adapts the registered handlers to the internal emitter interface.
// Dispatch iterates a snapshot, so handlers may subscribe or unsubscribe
// while being notified.
type fanout struct {
	nextID uint64
	subs   []subscription
}

func (f *fanout) add(h EventHandler) func() {
	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, subscription{id: id, handler: h})
	return func() { f.remove(id) }
}

func (f *fanout) remove(id uint64) {
	for i, s := range f.subs {
		if s.id == id {
			f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
			return
		}
	}
}

func (f *fanout) each(fn func(EventHandler)) {
	for _, s := range f.subs {
		fn(s.handler)
	}
}

func (f *fanout) OnVisibilityChanged(current Visibility) {
	f.each(func(h EventHandler) { h.OnVisibilityChanged(current) })
}

func (f *fanout) OnShowStarted()   { f.each(func(h EventHandler) { h.OnShowStarted() }) }
func (f *fanout) OnBecameVisible() { f.each(func(h EventHandler) { h.OnBecameVisible() }) }
func (f *fanout) OnHideStarted()   { f.each(func(h EventHandler) { h.OnHideStarted() }) }
func (f *fanout) OnBecameHidden()  { f.each(func(h EventHandler) { h.OnBecameHidden() }) }

func (f *fanout) OnCommandIssued(cmd Command) {
	f.each(func(h EventHandler) { h.OnCommandIssued(cmd) })
}
