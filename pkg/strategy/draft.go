package strategy

import (
	"github.com/aretw0/turtlebench/pkg/domain"
	"github.com/aretw0/turtlebench/pkg/draft"
)

// Draft updates through a copy-on-write proxy.
func Draft() Strategy {
	return Strategy{
		Name:           domain.StrategyDraft,
		SupportsCycles: true,
		Shallow: func(state *domain.Node) *domain.Node {
			return draft.Produce(state, func(d *draft.Draft) {
				d.SetFoo(d.Foo() + 1)
			})
		},
		Deep: func(state *domain.Node) *domain.Node {
			return draft.Produce(state, func(d *draft.Draft) {
				deep := d.Turtle().Turtle().Turtle().Turtle().Turtle().Turtle().Turtle().Turtle().Turtle()
				deep.SetFoo(deep.Foo() + 1)
			})
		},
	}
}
