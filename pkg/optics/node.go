package optics

import (
	"errors"
	"fmt"

	"github.com/aretw0/turtlebench/pkg/domain"
)

// ErrInvalidPath is returned when a field path cannot be resolved against Node.
var ErrInvalidPath = errors.New("invalid lens path")

// Field names accepted by Path.
const (
	FieldFoo    = "foo"
	FieldBar    = "bar"
	FieldTurtle = "turtle"
)

// Foo focuses on Node.Foo.
var Foo = New(
	func(n *domain.Node) int { return n.Foo },
	func(v int, n *domain.Node) *domain.Node {
		next := *n
		next.Foo = v
		return &next
	},
)

// Bar focuses on Node.Bar. Setting it also sets HasBar.
var Bar = New(
	func(n *domain.Node) rune { return n.Bar },
	func(v rune, n *domain.Node) *domain.Node {
		next := *n
		next.Bar = v
		next.HasBar = true
		return &next
	},
)

// Turtle focuses on Node.Turtle.
var Turtle = New(
	func(n *domain.Node) *domain.Node { return n.Turtle },
	func(v *domain.Node, n *domain.Node) *domain.Node {
		next := *n
		next.Turtle = v
		return &next
	},
)

// Path resolves a list of field names to a lens on an integer leaf:
// any number of "turtle" steps followed by "foo".
func Path(fields ...string) (Lens[*domain.Node, int], error) {
	if len(fields) == 0 {
		return Lens[*domain.Node, int]{}, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	leaf := fields[len(fields)-1]
	if leaf != FieldFoo {
		return Lens[*domain.Node, int]{}, fmt.Errorf("%w: leaf %q is not an integer field", ErrInvalidPath, leaf)
	}

	prefix := Lens[*domain.Node, *domain.Node]{
		get: func(n *domain.Node) *domain.Node { return n },
		set: func(v *domain.Node, _ *domain.Node) *domain.Node { return v },
	}
	for i, f := range fields[:len(fields)-1] {
		if f != FieldTurtle {
			return Lens[*domain.Node, int]{}, fmt.Errorf("%w: step %d is %q, want %q", ErrInvalidPath, i, f, FieldTurtle)
		}
		prefix = Compose(prefix, Turtle)
	}
	return Compose(prefix, Foo), nil
}

// MustPath is like Path but panics on an invalid path.
func MustPath(fields ...string) Lens[*domain.Node, int] {
	l, err := Path(fields...)
	if err != nil {
		panic(err)
	}
	return l
}

// FooAt returns the path to foo at the given depth.
func FooAt(depth int) []string {
	fields := make([]string, 0, depth+1)
	for i := 0; i < depth; i++ {
		fields = append(fields, FieldTurtle)
	}
	return append(fields, FieldFoo)
}
