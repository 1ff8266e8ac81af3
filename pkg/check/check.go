// Package check implements the correctness predicate applied to every benchmark case.
package check

import (
	"github.com/aretw0/turtlebench/pkg/domain"
)

// sink keeps unchecked results alive so the update is not optimized away.
var sink *domain.Node

// Checker validates updates for one scenario.
type Checker struct {
	mode     domain.CheckMode
	scenario domain.Scenario
}

// New creates a Checker. An invalid mode falls back to full checking.
func New(mode domain.CheckMode, scenario domain.Scenario) *Checker {
	if !mode.Valid() {
		mode = domain.CheckFull
	}
	return &Checker{mode: mode, scenario: scenario}
}

// Mode returns the effective check mode.
func (c *Checker) Mode() domain.CheckMode {
	return c.mode
}

// Before reads the targeted field of state ahead of an update.
func (c *Checker) Before(state *domain.Node) (int, error) {
	n, err := domain.At(state, c.scenario.Depth)
	if err != nil {
		return 0, err
	}
	return n.Foo, nil
}

// Check validates result against original, whose targeted field held before.
//
// In full mode: result must be a different root, original must still hold before,
// and result must hold before+1. Relaxed mode checks only the last property.
func (c *Checker) Check(caseName string, original *domain.Node, before int, result *domain.Node) error {
	if c.mode == domain.CheckNone {
		return nil
	}

	if c.mode == domain.CheckFull {
		if original == result {
			return c.violation(domain.KindIdentity, caseName, before, before)
		}
		if n, err := domain.At(original, c.scenario.Depth); err != nil || n.Foo != before {
			got := before + 1
			if err == nil {
				got = n.Foo
			}
			return c.violation(domain.KindMutation, caseName, before, got)
		}
	}

	want := before + 1
	n, err := domain.At(result, c.scenario.Depth)
	if err != nil {
		return c.violation(domain.KindValue, caseName, want, 0)
	}
	if n.Foo != want {
		return c.violation(domain.KindValue, caseName, want, n.Foo)
	}
	return nil
}

// Guard wraps update into a benchmark case body: update, then check.
// The targeted field is read once, here, so every call is checked against the
// value state held when the case was built, not whatever an earlier call left.
func (c *Checker) Guard(caseName string, state *domain.Node, update func(*domain.Node) *domain.Node) func() error {
	if c.mode == domain.CheckNone {
		return func() error {
			sink = update(state)
			return nil
		}
	}
	before, err := c.Before(state)
	if err != nil {
		return func() error { return err }
	}
	return func() error {
		return c.Check(caseName, state, before, update(state))
	}
}

func (c *Checker) violation(kind domain.ViolationKind, caseName string, want, got int) error {
	return &domain.AssertionViolation{
		Kind:     kind,
		Case:     caseName,
		Scenario: c.scenario.Name,
		Want:     want,
		Got:      got,
	}
}
