package domain

import "time"

// Range is an inclusive duration range used by randomized timings.
type Range struct {
	Min time.Duration `yaml:"min" toml:"min"`
	Max time.Duration `yaml:"max" toml:"max"`
}

// Timing is the delay/duration metadata a reaction declares. Only this
// metadata is consumed by the estimator; curves are not.
type Timing struct {
	StartDelay          time.Duration `yaml:"delay"`
	UseRandomStartDelay bool          `yaml:"use_random_delay"`
	RandomStartDelay    Range         `yaml:"random_delay"`

	Duration          time.Duration `yaml:"duration"`
	UseRandomDuration bool          `yaml:"use_random_duration"`
	RandomDuration    Range         `yaml:"random_duration"`
}

// MaxStartDelay returns the longest start delay the timing can produce.
func (t Timing) MaxStartDelay() time.Duration {
	if t.UseRandomStartDelay {
		return t.RandomStartDelay.Max
	}
	return t.StartDelay
}

// MaxDuration returns the longest duration the timing can produce.
func (t Timing) MaxDuration() time.Duration {
	if t.UseRandomDuration {
		return t.RandomDuration.Max
	}
	return t.Duration
}

// Total returns MaxStartDelay plus MaxDuration.
func (t Timing) Total() time.Duration {
	return t.MaxStartDelay() + t.MaxDuration()
}
