package domain

// FixtureOptions selects one of the fixture shapes.
type FixtureOptions struct {
	// Cyclic makes the deepest turtle point back at the root.
	Cyclic bool `json:"cyclic" mapstructure:"cyclic"`

	// WithBar fills bar with 'a'..'j' on every level.
	WithBar bool `json:"with_bar" mapstructure:"with_bar"`
}

// Arena holds the fixture's nodes addressed by their stable identifier.
type Arena struct {
	Nodes   []*Node
	Options FixtureOptions
}

// NewFixture assembles the fixture: FixtureDepth levels with foo = depth and,
// optionally, bar = 'a' + depth.
func NewFixture(opts FixtureOptions) *Arena {
	nodes := make([]*Node, FixtureDepth)
	for i := FixtureDepth - 1; i >= 0; i-- {
		n := &Node{ID: i, Foo: i}
		if opts.WithBar {
			n.Bar = rune('a' + i)
			n.HasBar = true
		}
		if i+1 < FixtureDepth {
			n.Turtle = nodes[i+1]
		}
		nodes[i] = n
	}
	if opts.Cyclic {
		nodes[FixtureDepth-1].Turtle = nodes[0]
	}
	return &Arena{Nodes: nodes, Options: opts}
}

// Root returns the top level of the fixture.
func (a *Arena) Root() *Node {
	return a.Nodes[0]
}

// Node returns the level with the given identifier, or nil if out of range.
func (a *Arena) Node(id int) *Node {
	if id < 0 || id >= len(a.Nodes) {
		return nil
	}
	return a.Nodes[id]
}

// Intact reports whether every node still holds the values it was built with.
// Strategies that write through to the fixture break this.
func (a *Arena) Intact() bool {
	for i, n := range a.Nodes {
		if n.ID != i || n.Foo != i {
			return false
		}
		if a.Options.WithBar && (!n.HasBar || n.Bar != rune('a'+i)) {
			return false
		}
		var want *Node
		switch {
		case i+1 < len(a.Nodes):
			want = a.Nodes[i+1]
		case a.Options.Cyclic:
			want = a.Nodes[0]
		}
		if n.Turtle != want {
			return false
		}
	}
	return true
}
