package strategy

import "github.com/aretw0/turtlebench/pkg/domain"

// Manual copies every level on the path by hand.
// It is written against the fixed fixture shape and is not offered for cyclic state.
func Manual() Strategy {
	return Strategy{
		Name:           domain.StrategyManual,
		SupportsCycles: false,
		Shallow:        manualShallow,
		Deep:           manualDeep,
	}
}

func manualShallow(state *domain.Node) *domain.Node {
	next := *state
	next.Foo = state.Foo + 1
	return &next
}

func manualDeep(state *domain.Node) *domain.Node {
	l0 := *state
	l1 := *l0.Turtle
	l2 := *l1.Turtle
	l3 := *l2.Turtle
	l4 := *l3.Turtle
	l5 := *l4.Turtle
	l6 := *l5.Turtle
	l7 := *l6.Turtle
	l8 := *l7.Turtle
	l9 := *l8.Turtle

	l9.Foo = l9.Foo + 1

	l8.Turtle = &l9
	l7.Turtle = &l8
	l6.Turtle = &l7
	l5.Turtle = &l6
	l4.Turtle = &l5
	l3.Turtle = &l4
	l2.Turtle = &l3
	l1.Turtle = &l2
	l0.Turtle = &l1
	return &l0
}
