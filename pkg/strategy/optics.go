package strategy

import (
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/optics"
)

// Optics updates through lenses resolved from field paths.
func Optics() Strategy {
	shallow := optics.MustPath(optics.FooAt(0)...)
	deep := optics.MustPath(optics.FooAt(domain.DeepLevel)...)

	return Strategy{
		Name:           domain.StrategyOptics,
		SupportsCycles: true,
		Shallow: func(state *domain.Node) *domain.Node {
			return optics.Over(shallow, optics.Inc, state)
		},
		Deep: func(state *domain.Node) *domain.Node {
			return optics.Over(deep, optics.Inc, state)
		},
	}
}
