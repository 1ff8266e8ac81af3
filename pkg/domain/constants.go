package domain

// Fixture shape.
const (
	// FixtureDepth is the number of levels in the fixture.
	FixtureDepth = 10

	// DeepLevel is the depth targeted by the deep update scenario.
	DeepLevel = FixtureDepth - 1
)

// Strategy names as they appear in case names, configuration and flags.
const (
	StrategyOptics = "optics"
	StrategyDraft  = "draft"
	StrategyManual = "manual"
)
