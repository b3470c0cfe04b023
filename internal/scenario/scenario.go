// Package scenario loads YAML scripts that drive a simulated view: the
// animators and progress drivers attached to it, and the commands issued
// at given points of scheduler time.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CoderValencia/uiview/pkg/view"
)

// ErrInvalidScenario is returned when a scenario fails validation.
var ErrInvalidScenario = errors.New("uiview: invalid scenario")

// Action is a step action.
type Action string

const (
	ActionShow          Action = "show"
	ActionHide          Action = "hide"
	ActionToggle        Action = "toggle"
	ActionInstantShow   Action = "instant_show"
	ActionInstantHide   Action = "instant_hide"
	ActionInstantToggle Action = "instant_toggle"

	// ActionRelease releases the reactions of the animator named by Target
	// without detaching it.
	ActionRelease Action = "release"
)

var actions = []Action{
	ActionShow, ActionHide, ActionToggle,
	ActionInstantShow, ActionInstantHide, ActionInstantToggle,
	ActionRelease,
}

// Pool names accepted by Driver.Pool.
var pools = map[string]view.PoolKind{
	"show":      view.PoolShow,
	"hide":      view.PoolHide,
	"show_hide": view.PoolShowHide,
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Name      string          `yaml:"name"`
	View      view.FileConfig `yaml:"view"`
	Animators []Animator      `yaml:"animators"`
	Drivers   []Driver        `yaml:"drivers"`
	Steps     []Step          `yaml:"steps"`

	// End is how long the scenario runs, measured from its start. It
	// defaults to the last step plus one second.
	End time.Duration `yaml:"end"`
}

// Animator declares a progress.Animator.
type Animator struct {
	Name string      `yaml:"name"`
	Show view.Timing `yaml:"show"`
	Hide view.Timing `yaml:"hide"`
}

// Driver declares a progress.Driver in one of the view's pools.
type Driver struct {
	Name   string      `yaml:"name"`
	Pool   string      `yaml:"pool"`
	Timing view.Timing `yaml:"timing"`
}

// Step issues Action once At of scheduler time has passed.
type Step struct {
	At     time.Duration `yaml:"at"`
	Action Action        `yaml:"action"`
	Target string        `yaml:"target,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse parses and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks names, pools, actions and timings, and fills End.
func (s *Scenario) Validate() error {
	names := map[string]bool{}
	for i, a := range s.Animators {
		if a.Name == "" {
			return fmt.Errorf("%w: animator %d has no name", ErrInvalidScenario, i)
		}
		if names[a.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, a.Name)
		}
		names[a.Name] = true
		if err := validTiming(a.Show); err != nil {
			return fmt.Errorf("%w: animator %q show: %w", ErrInvalidScenario, a.Name, err)
		}
		if err := validTiming(a.Hide); err != nil {
			return fmt.Errorf("%w: animator %q hide: %w", ErrInvalidScenario, a.Name, err)
		}
	}
	for i, d := range s.Drivers {
		if d.Name == "" {
			return fmt.Errorf("%w: driver %d has no name", ErrInvalidScenario, i)
		}
		if names[d.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, d.Name)
		}
		names[d.Name] = true
		if _, ok := pools[d.Pool]; !ok {
			return fmt.Errorf("%w: driver %q: unknown pool %q", ErrInvalidScenario, d.Name, d.Pool)
		}
		if err := validTiming(d.Timing); err != nil {
			return fmt.Errorf("%w: driver %q: %w", ErrInvalidScenario, d.Name, err)
		}
	}

	var last time.Duration
	for i, st := range s.Steps {
		if !slices.Contains(actions, st.Action) {
			return fmt.Errorf("%w: step %d: unknown action %q", ErrInvalidScenario, i, st.Action)
		}
		if st.At < 0 {
			return fmt.Errorf("%w: step %d: negative time", ErrInvalidScenario, i)
		}
		if st.Action == ActionRelease && !s.hasAnimator(st.Target) {
			return fmt.Errorf("%w: step %d: unknown animator %q", ErrInvalidScenario, i, st.Target)
		}
		last = max(last, st.At)
	}
	if s.End == 0 {
		s.End = last + time.Second
	}
	if s.End < last {
		return fmt.Errorf("%w: end %s is before the last step at %s", ErrInvalidScenario, s.End, last)
	}
	return nil
}

func (s *Scenario) hasAnimator(name string) bool {
	for _, a := range s.Animators {
		if a.Name == name {
			return true
		}
	}
	return false
}

func validTiming(t view.Timing) error {
	if t.StartDelay < 0 || t.Duration < 0 {
		return errors.New("negative duration")
	}
	for _, r := range []view.Range{t.RandomStartDelay, t.RandomDuration} {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("bad random range [%s, %s]", r.Min, r.Max)
		}
	}
	return nil
}

// ViewConfig overlays the scenario's view section onto base.
func (s *Scenario) ViewConfig(base view.Config) (view.Config, error) {
	if err := s.View.Apply(&base); err != nil {
		return base, err
	}
	base.SetDefaults()
	return base, base.Validate()
}
