package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	copyPath := func(root *Node, depth int, mutate func(*Node)) *Node {
		// Copies levels 0..depth, sharing everything below.
		src := make([]*Node, depth+1)
		n := root
		for i := 0; i <= depth; i++ {
			src[i] = n
			n = n.Turtle
		}
		var next *Node
		for i := depth; i >= 0; i-- {
			c := *src[i]
			if i == depth {
				mutate(&c)
			} else {
				c.Turtle = next
			}
			next = &c
		}
		return next
	}

	tests := []struct {
		name       string
		cyclic     bool
		build      func(root *Node) *Node
		wantCopied int
		wantShared int
		wantChange []FieldChange
	}{
		{
			name:       "Same State",
			build:      func(root *Node) *Node { return root },
			wantShared: FixtureDepth,
		},
		{
			name: "Shallow Copy",
			build: func(root *Node) *Node {
				return copyPath(root, 0, func(n *Node) { n.Foo++ })
			},
			wantCopied: 1,
			wantShared: FixtureDepth - 1,
			wantChange: []FieldChange{{Depth: 0, Field: "foo", Old: 0, New: 1}},
		},
		{
			name:   "Deep Copy On Cycle",
			cyclic: true,
			build: func(root *Node) *Node {
				return copyPath(root, DeepLevel, func(n *Node) { n.Foo++ })
			},
			wantCopied: FixtureDepth,
			wantChange: []FieldChange{{Depth: DeepLevel, Field: "foo", Old: DeepLevel, New: DeepLevel + 1}},
		},
		{
			name: "Bar Removed",
			build: func(root *Node) *Node {
				return copyPath(root, 2, func(n *Node) { n.HasBar = false; n.Bar = 0 })
			},
			wantCopied: 3,
			wantShared: FixtureDepth - 3,
			wantChange: []FieldChange{{Depth: 2, Field: "bar", Old: "c", New: nil}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arena := NewFixture(FixtureOptions{Cyclic: tt.cyclic, WithBar: true})
			got := Diff(arena.Root(), tt.build(arena.Root()))
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCopied, got.Copied)
			assert.Equal(t, tt.wantShared, got.Shared)
			assert.Equal(t, tt.wantChange, got.Changes)
			assert.Equal(t, len(tt.wantChange) == 0, got.IsEmpty())
			assert.True(t, arena.Intact())
		})
	}
}

func TestDiff_Nil(t *testing.T) {
	assert.Nil(t, Diff(nil, &Node{}))
	assert.Nil(t, Diff(&Node{}, nil))

	var d *StateDiff
	assert.True(t, d.IsEmpty())
}

func TestDiff_TruncatedChain(t *testing.T) {
	arena := NewFixture(FixtureOptions{})
	root := *arena.Root()
	root.Turtle = nil

	got := Diff(arena.Root(), &root)
	require.Len(t, got.Changes, 1)
	assert.Equal(t, "turtle", got.Changes[0].Field)
	assert.Equal(t, 0, got.Changes[0].Depth)
}

func TestDiff_JSON(t *testing.T) {
	arena := NewFixture(FixtureOptions{})
	next := *arena.Root()
	next.Foo = 1

	data, err := json.Marshal(Diff(arena.Root(), &next))
	require.NoError(t, err)
	assert.JSONEq(t, `{"changes":[{"depth":0,"field":"foo","old":0,"new":1}],"copied":1,"shared":9}`, string(data))
}
