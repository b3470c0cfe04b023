package app

import "github.com/CoderValencia/uiview/internal/ports"

// Registry is a membership-unique, insertion-ordered set of reactions that
// external animators register into. It never owns its entries: nil and
// released entries are tolerated and purged lazily before use.
type Registry struct {
	items []ports.Reaction
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds r. It reports false when r is nil or already registered.
func (r *Registry) Register(reaction ports.Reaction) bool {
	if reaction == nil || r.Contains(reaction) {
		return false
	}
	r.items = append(r.items, reaction)
	return true
}

// Unregister removes r and reports whether it was present.
func (r *Registry) Unregister(reaction ports.Reaction) bool {
	for i, item := range r.items {
		if item == reaction {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether r is registered.
func (r *Registry) Contains(reaction ports.Reaction) bool {
	for _, item := range r.items {
		if item == reaction {
			return true
		}
	}
	return false
}

// Len returns the number of entries, including any not yet purged.
func (r *Registry) Len() int {
	return len(r.items)
}

// Purge removes nil and released entries in place and returns how many were
// removed.
func (r *Registry) Purge() int {
	kept := r.items[:0]
	for _, item := range r.items {
		if !ports.IsGone(item) {
			kept = append(kept, item)
		}
	}
	removed := len(r.items) - len(kept)
	clear(r.items[len(kept):])
	r.items = kept
	return removed
}

// AnyActive reports whether any live entry is active.
func (r *Registry) AnyActive() bool {
	for _, item := range r.items {
		if !ports.IsGone(item) && item.IsActive() {
			return true
		}
	}
	return false
}

// Items returns a copy of the live entries in registration order.
func (r *Registry) Items() []ports.Reaction {
	out := make([]ports.Reaction, 0, len(r.items))
	for _, item := range r.items {
		if !ports.IsGone(item) {
			out = append(out, item)
		}
	}
	return out
}
