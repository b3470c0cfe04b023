package ports

// Surface is the rendering surface of a view (a canvas, a layer, a window).
type Surface interface {
	SetEnabled(enabled bool)
}

// Raycaster routes input to the view.
type Raycaster interface {
	SetEnabled(enabled bool)
}

// Owner is the object a view belongs to. Hide is ignored while the owner is
// inactive.
type Owner interface {
	SetActive(active bool)
	IsActive() bool
}

// Selector is the optional selection subsystem.
type Selector interface {
	ClearSelection()
	Select(target any)
}
