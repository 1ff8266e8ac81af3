// Package strategy registers the update strategies compared by the harness.
//
// Each strategy provides one update per scenario. Updates must return a new root and
// must never write to the state they are given.
package strategy

import (
	"fmt"

	"github.com/aretw0/turtlebench/pkg/domain"
)

// UpdateFunc produces the next state from state.
type UpdateFunc func(state *domain.Node) *domain.Node

// Strategy is one way of producing an updated copy.
type Strategy struct {
	Name string

	// SupportsCycles reports whether the strategy may run on the cyclic fixture.
	// Resolve and Compatible refuse a strategy that leaves it false.
	SupportsCycles bool

	Shallow UpdateFunc
	Deep    UpdateFunc
}

// For returns the update matching scenario.
func (s Strategy) For(scenario domain.Scenario) (UpdateFunc, error) {
	var fn UpdateFunc
	switch scenario.Depth {
	case 0:
		fn = s.Shallow
	case domain.DeepLevel:
		fn = s.Deep
	default:
		return nil, fmt.Errorf("%w: scenario %q targets depth %d", domain.ErrDepthOutOfRange, scenario.Name, scenario.Depth)
	}
	if fn == nil {
		return nil, fmt.Errorf("strategy %q has no update for %q", s.Name, scenario.Name)
	}
	return fn, nil
}

// All returns the built-in strategies in reporting order.
func All() []Strategy {
	return []Strategy{Optics(), Draft(), Manual()}
}

// Lookup finds a built-in strategy by name.
func Lookup(name string) (Strategy, error) {
	for _, s := range All() {
		if s.Name == name {
			return s, nil
		}
	}
	return Strategy{}, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, name)
}

// Resolve looks up names in order and refuses strategies that cannot handle a cyclic
// fixture when cyclic is set.
func Resolve(names []string, cyclic bool) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := Compatible(out, cyclic); err != nil {
		return nil, err
	}
	return out, nil
}

// Compatible returns ErrCyclicUnsupported if cyclic is set and any strategy cannot
// traverse a cycle.
func Compatible(strategies []Strategy, cyclic bool) error {
	if !cyclic {
		return nil
	}
	for _, s := range strategies {
		if !s.SupportsCycles {
			return fmt.Errorf("%w: %q", domain.ErrCyclicUnsupported, s.Name)
		}
	}
	return nil
}
