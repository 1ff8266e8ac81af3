// Package optics provides functional lenses: composable getter/setter pairs that
// return updated copies instead of writing in place.
package optics

// Lens focuses on a part A of a whole S.
// Set must return a new S and leave its argument untouched.
type Lens[S, A any] struct {
	get func(S) A
	set func(A, S) S
}

// New builds a lens from a getter and a copying setter.
func New[S, A any](get func(S) A, set func(A, S) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get reads the focused part.
func (l Lens[S, A]) Get(s S) A {
	return l.get(s)
}

// Set returns a copy of s with the focused part replaced by a.
func (l Lens[S, A]) Set(a A, s S) S {
	return l.set(a, s)
}

// Compose focuses inner through outer.
func Compose[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(b B, s S) S {
			return outer.set(inner.set(b, outer.get(s)), s)
		},
	}
}

// Over applies fn to the focused part and returns the updated whole.
func Over[S, A any](l Lens[S, A], fn func(A) A, s S) S {
	return l.set(fn(l.get(s)), s)
}

// Inc adds one.
func Inc(n int) int {
	return n + 1
}
