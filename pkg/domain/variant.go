package domain

import (
	"fmt"
	"slices"
)

// CheckMode selects how much of the correctness predicate runs.
type CheckMode string

const (
	CheckFull    CheckMode = "full"    // identity, mutation and value
	CheckRelaxed CheckMode = "relaxed" // value only
	CheckNone    CheckMode = "none"
)

// Valid reports whether m is a known mode.
func (m CheckMode) Valid() bool {
	switch m {
	case CheckFull, CheckRelaxed, CheckNone:
		return true
	}
	return false
}

// Variant is one benchmark configuration.
type Variant struct {
	Name       string
	Fixture    FixtureOptions
	Check      CheckMode
	Strategies []string

	// ForceGC requests a full collection before each session.
	ForceGC bool
}

var (
	// VariantCyclic points the deepest turtle at the root. Manual spread is left out
	// because it cannot copy through a cycle.
	VariantCyclic = Variant{
		Name:       "cyclic",
		Fixture:    FixtureOptions{Cyclic: true, WithBar: true},
		Check:      CheckFull,
		Strategies: []string{StrategyOptics, StrategyDraft},
		ForceGC:    true,
	}

	VariantAcyclic = Variant{
		Name:       "acyclic",
		Fixture:    FixtureOptions{WithBar: true},
		Check:      CheckFull,
		Strategies: []string{StrategyOptics, StrategyDraft, StrategyManual},
	}

	// VariantRelaxed measures the lighter workload: no bar and only the value check.
	VariantRelaxed = Variant{
		Name:       "relaxed",
		Fixture:    FixtureOptions{},
		Check:      CheckRelaxed,
		Strategies: []string{StrategyOptics, StrategyDraft, StrategyManual},
	}
)

// Variants returns the built-in variants.
func Variants() []Variant {
	return []Variant{VariantCyclic, VariantAcyclic, VariantRelaxed}
}

// LookupVariant returns a copy of the named built-in variant.
func LookupVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			v.Strategies = slices.Clone(v.Strategies)
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}
