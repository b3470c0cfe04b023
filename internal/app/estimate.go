package app

import (
	"time"

	"github.com/CoderValencia/uiview/internal/ports"
)

// EstimateShowDuration returns the worst-case duration of a show: the show
// reactions, or the show and showHide pools, whichever is longer.
func (d *Driver) EstimateShowDuration() time.Duration {
	return estimate(d.showReactions, &d.pools.Show, &d.pools.ShowHide, true)
}

// EstimateHideDuration returns the worst-case duration of a hide. The showHide
// pool plays in reverse on hide, so its start delay does not count.
func (d *Driver) EstimateHideDuration() time.Duration {
	return estimate(d.hideReactions, &d.pools.Hide, &d.pools.ShowHide, false)
}

func estimate(reactions *Registry, exclusive, shared *Pool, sharedDelay bool) time.Duration {
	var maxDelay, maxDuration time.Duration
	for _, r := range reactions.Items() {
		t := r.Timing()
		maxDelay = max(maxDelay, t.MaxStartDelay())
		maxDuration = max(maxDuration, t.MaxDuration())
	}
	reactionsTotal := maxDelay + maxDuration

	var poolDelay, poolDuration time.Duration
	exclusive.Each(func(p ports.ProgressDriver) {
		r := p.Reaction()
		if ports.IsGone(r) {
			return
		}
		t := r.Timing()
		poolDelay = max(poolDelay, t.MaxStartDelay())
		poolDuration = max(poolDuration, t.MaxDuration())
	})
	shared.Each(func(p ports.ProgressDriver) {
		r := p.Reaction()
		if ports.IsGone(r) {
			return
		}
		t := r.Timing()
		if sharedDelay {
			poolDelay = max(poolDelay, t.MaxStartDelay())
		}
		poolDuration = max(poolDuration, t.MaxDuration())
	})

	return max(reactionsTotal, poolDelay+poolDuration)
}
