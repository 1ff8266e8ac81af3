package domain

import (
	"errors"
	"fmt"
)

// ErrAssertion is the parent of every AssertionViolation.
var ErrAssertion = errors.New("assertion violation")

// ErrUnknownVariant is returned when a variant name is not registered.
var ErrUnknownVariant = errors.New("unknown variant")

// ErrUnknownStrategy is returned when a strategy name is not registered.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrCyclicUnsupported is returned when a strategy that cannot traverse a cycle is
// selected for a cyclic fixture.
var ErrCyclicUnsupported = errors.New("strategy does not support cyclic state")

// ErrDepthOutOfRange is returned when a depth does not exist in a state chain.
var ErrDepthOutOfRange = errors.New("depth out of range")

// ViolationKind names which property of the correctness predicate failed.
type ViolationKind string

const (
	KindIdentity ViolationKind = "identity" // result is the same object as the input
	KindMutation ViolationKind = "mutation" // input was changed in place
	KindValue    ViolationKind = "value"    // result does not hold the expected value
)

// AssertionViolation is raised by the correctness predicate.
type AssertionViolation struct {
	Kind     ViolationKind `json:"kind"`
	Case     string        `json:"case"`
	Scenario string        `json:"scenario"`

	// Want and Got are only set for value and mutation violations.
	Want int `json:"want"`
	Got  int `json:"got"`
}

func (v *AssertionViolation) Error() string {
	switch v.Kind {
	case KindIdentity:
		return fmt.Sprintf("SAME STATE OBJECT: %s", v.Case)
	case KindMutation:
		return fmt.Sprintf("MUTATED OLD STATE: %s (foo was %d, now %d)", v.Case, v.Want, v.Got)
	default:
		return fmt.Sprintf("INCORRECT RESULT: %s (want foo %d, got %d)", v.Case, v.Want, v.Got)
	}
}

func (v *AssertionViolation) Unwrap() error {
	return ErrAssertion
}
