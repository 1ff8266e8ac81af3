package domain

import "fmt"

// Node is one level of the nested state.
// Values are immutable by convention: update strategies must copy a Node before
// changing it and never write to a Node they did not allocate.
type Node struct {
	// ID is the stable identifier of the level (its depth in the fixture).
	// Copies keep the ID of the node they were copied from.
	ID int

	Foo int

	// Bar is only meaningful when HasBar is set.
	Bar    rune
	HasBar bool

	// Turtle points at the next level. It is nil at the deepest level of an acyclic
	// fixture and points back at the root in a cyclic one.
	Turtle *Node
}

// String renders a node without following Turtle, so it is safe on cycles.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.HasBar {
		return fmt.Sprintf("{id:%d foo:%d bar:%q}", n.ID, n.Foo, n.Bar)
	}
	return fmt.Sprintf("{id:%d foo:%d}", n.ID, n.Foo)
}

// At follows Turtle depth times starting at root.
func At(root *Node, depth int) (*Node, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrDepthOutOfRange, depth)
	}
	n := root
	for i := 0; i < depth; i++ {
		if n == nil {
			break
		}
		n = n.Turtle
	}
	if n == nil {
		return nil, fmt.Errorf("%w: no node at depth %d", ErrDepthOutOfRange, depth)
	}
	return n, nil
}

// Walk visits the chain starting at root, in depth order, until the chain ends or a
// node is reached for the second time. fn may return false to stop early.
func Walk(root *Node, fn func(depth int, n *Node) bool) {
	seen := make(map[*Node]struct{})
	depth := 0
	for n := root; n != nil; n = n.Turtle {
		if _, ok := seen[n]; ok {
			return
		}
		seen[n] = struct{}{}
		if !fn(depth, n) {
			return
		}
		depth++
	}
}

// Equal reports whether a and b are structurally equal.
// Pairs that are already being compared are assumed equal, so two fixtures whose
// deepest turtle points at their own root compare equal instead of looping.
func Equal(a, b *Node) bool {
	inProgress := make(map[[2]*Node]struct{})
	for {
		if a == nil || b == nil {
			return a == b
		}
		key := [2]*Node{a, b}
		if _, ok := inProgress[key]; ok {
			return true
		}
		inProgress[key] = struct{}{}

		if a.ID != b.ID || a.Foo != b.Foo || a.HasBar != b.HasBar {
			return false
		}
		if a.HasBar && a.Bar != b.Bar {
			return false
		}
		a, b = a.Turtle, b.Turtle
	}
}
