/*
Package draft implements copy-on-write updates through a writable proxy.

A recipe edits a Draft as if it owned the state; Produce then returns a new state in
which only the levels that were written, and their ancestors, are fresh copies. Every
other level is shared with the base.

	next := draft.Produce(state, func(d *draft.Draft) {
		d.Turtle().SetFoo(d.Turtle().Foo() + 1)
	})

Child drafts are created lazily, one per accessed turtle, so a recipe only pays for the
path it walks and a cyclic base is never traversed on its own.
*/
package draft

import "github.com/aretw0/turtlebench/pkg/domain"

// Draft is a writable view of one level of a base state.
// A Draft is only valid inside the recipe passed to Produce.
type Draft struct {
	base   *domain.Node
	copy   *domain.Node
	parent *Draft
	child  *Draft
}

// Produce runs recipe against a draft of base and returns the resulting state.
// If the recipe writes nothing, base itself is returned.
func Produce(base *domain.Node, recipe func(d *Draft)) *domain.Node {
	root := &Draft{base: base}
	recipe(root)
	return root.finalize()
}

func (d *Draft) current() *domain.Node {
	if d.copy != nil {
		return d.copy
	}
	return d.base
}

// Modified reports whether this level has been copied.
func (d *Draft) Modified() bool {
	return d.copy != nil
}

// Foo reads foo.
func (d *Draft) Foo() int {
	return d.current().Foo
}

// SetFoo writes foo.
func (d *Draft) SetFoo(v int) {
	d.prepare()
	d.copy.Foo = v
}

// Bar reads bar and whether it is set.
func (d *Draft) Bar() (rune, bool) {
	n := d.current()
	return n.Bar, n.HasBar
}

// SetBar writes bar.
func (d *Draft) SetBar(v rune) {
	d.prepare()
	d.copy.Bar = v
	d.copy.HasBar = true
}

// Turtle returns the draft of the next level, or nil at the end of the chain.
func (d *Draft) Turtle() *Draft {
	if d.child == nil {
		next := d.current().Turtle
		if next == nil {
			return nil
		}
		d.child = &Draft{base: next, parent: d}
	}
	return d.child
}

// SetTurtle replaces the next level with n. Drafts previously obtained from Turtle
// are detached.
func (d *Draft) SetTurtle(n *domain.Node) {
	d.prepare()
	d.copy.Turtle = n
	if d.child != nil {
		d.child.parent = nil
		d.child = nil
	}
}

// prepare copies this level and every ancestor on first write.
func (d *Draft) prepare() {
	for p := d; p != nil && p.copy == nil; p = p.parent {
		c := *p.base
		p.copy = &c
	}
}

func (d *Draft) finalize() *domain.Node {
	if d.copy == nil {
		return d.base
	}
	if d.child != nil {
		d.copy.Turtle = d.child.finalize()
	}
	return d.copy
}
