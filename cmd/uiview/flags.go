package main

import "github.com/CoderValencia/uiview/pkg/view"

// behaviourValue adapts a view.Behaviour to pflag.Value.
type behaviourValue struct {
	b *view.Behaviour
}

func (v behaviourValue) String() string {
	if v.b == nil {
		return view.BehaviourDisabled.String()
	}
	return v.b.String()
}

func (v behaviourValue) Set(s string) error {
	b, err := view.ParseBehaviour(s)
	if err != nil {
		return err
	}
	*v.b = b
	return nil
}

func (behaviourValue) Type() string { return "behaviour" }
