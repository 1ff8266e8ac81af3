package domain

// FieldChange is one field that differs between two versions of the same level.
type FieldChange struct {
	Depth int    `json:"depth"`
	Field string `json:"field"`
	Old   any    `json:"old"`
	New   any    `json:"new"`
}

// StateDiff describes how an updated state relates to the state it was derived from.
// It is designed to be serialized to JSON by the check command.
type StateDiff struct {
	Changes []FieldChange `json:"changes,omitempty"`

	// Copied counts levels where the new state holds a different node.
	Copied int `json:"copied"`

	// Shared counts levels where the new state reuses the old node.
	Shared int `json:"shared"`
}

// Diff walks old and new level by level until old ends or repeats.
// Returns nil if either side is nil.
func Diff(oldState, newState *Node) *StateDiff {
	if oldState == nil || newState == nil {
		return nil
	}

	diff := &StateDiff{}
	seen := make(map[*Node]struct{})
	o, n := oldState, newState
	for depth := 0; o != nil; depth++ {
		if _, ok := seen[o]; ok {
			break
		}
		seen[o] = struct{}{}

		if n == nil {
			diff.Changes = append(diff.Changes, FieldChange{Depth: depth - 1, Field: "turtle", Old: o.ID, New: nil})
			break
		}

		if o == n {
			diff.Shared++
		} else {
			diff.Copied++
			diff.Changes = append(diff.Changes, diffNode(depth, o, n)...)
		}
		o, n = o.Turtle, n.Turtle
	}
	return diff
}

func diffNode(depth int, o, n *Node) []FieldChange {
	var changes []FieldChange
	if o.Foo != n.Foo {
		changes = append(changes, FieldChange{Depth: depth, Field: "foo", Old: o.Foo, New: n.Foo})
	}
	if o.HasBar != n.HasBar || o.Bar != n.Bar {
		changes = append(changes, FieldChange{Depth: depth, Field: "bar", Old: barValue(o), New: barValue(n)})
	}
	return changes
}

func barValue(n *Node) any {
	if !n.HasBar {
		return nil
	}
	return string(n.Bar)
}

// IsEmpty checks if the diff contains any field changes.
func (d *StateDiff) IsEmpty() bool {
	return d == nil || len(d.Changes) == 0
}
