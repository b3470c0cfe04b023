package app

import (
	"fmt"

	"github.com/CoderValencia/uiview/internal/ports"
)

// PoolKind names one of the three progress-driver pools of a view.
type PoolKind int

const (
	// PoolShow drivers play on show only.
	PoolShow PoolKind = iota
	// PoolHide drivers play on hide only.
	PoolHide
	// PoolShowHide drivers share one axis: forward on show, reverse on hide.
	PoolShowHide
)

func (k PoolKind) String() string {
	switch k {
	case PoolShow:
		return "show"
	case PoolHide:
		return "hide"
	case PoolShowHide:
		return "showHide"
	default:
		return fmt.Sprintf("PoolKind(%d)", int(k))
	}
}

// Pool is an ordered list of progress drivers. Like a configured list it may
// hold empty (nil) slots; they are purged before every use.
type Pool struct {
	drivers []ports.ProgressDriver
}

// Add appends d, nil included.
func (p *Pool) Add(d ports.ProgressDriver) {
	p.drivers = append(p.drivers, d)
}

// Remove deletes the first occurrence of d and reports whether it was found.
func (p *Pool) Remove(d ports.ProgressDriver) bool {
	for i, item := range p.drivers {
		if item == d {
			p.drivers = append(p.drivers[:i], p.drivers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries, including any not yet purged.
func (p *Pool) Len() int {
	return len(p.drivers)
}

// Purge removes nil and released entries in place.
func (p *Pool) Purge() int {
	kept := p.drivers[:0]
	for _, d := range p.drivers {
		if !ports.IsGone(d) {
			kept = append(kept, d)
		}
	}
	removed := len(p.drivers) - len(kept)
	clear(p.drivers[len(kept):])
	p.drivers = kept
	return removed
}

// Each purges the pool, then calls fn for every driver in order.
func (p *Pool) Each(fn func(ports.ProgressDriver)) {
	p.Purge()
	for _, d := range p.drivers {
		fn(d)
	}
}

// AnyActive reports whether any driver's underlying reaction is active.
func (p *Pool) AnyActive() bool {
	for _, d := range p.drivers {
		if ports.IsGone(d) {
			continue
		}
		if r := d.Reaction(); !ports.IsGone(r) && r.IsActive() {
			return true
		}
	}
	return false
}

// Drivers returns a copy of the live drivers in order.
func (p *Pool) Drivers() []ports.ProgressDriver {
	p.Purge()
	return append([]ports.ProgressDriver(nil), p.drivers...)
}

// Pools holds the three progress-driver pools of a view.
type Pools struct {
	Show     Pool
	Hide     Pool
	ShowHide Pool
}

// Get returns the pool for kind, or nil for an unknown kind.
func (p *Pools) Get(kind PoolKind) *Pool {
	switch kind {
	case PoolShow:
		return &p.Show
	case PoolHide:
		return &p.Hide
	case PoolShowHide:
		return &p.ShowHide
	default:
		return nil
	}
}

// PurgeAll purges all three pools.
func (p *Pools) PurgeAll() {
	p.Show.Purge()
	p.Hide.Purge()
	p.ShowHide.Purge()
}

// Empty reports whether no pool holds a driver.
func (p *Pools) Empty() bool {
	return p.Show.Len() == 0 && p.Hide.Len() == 0 && p.ShowHide.Len() == 0
}

// AnyActive reports whether any driver in any pool is active.
func (p *Pools) AnyActive() bool {
	return p.Show.AnyActive() || p.Hide.AnyActive() || p.ShowHide.AnyActive()
}
