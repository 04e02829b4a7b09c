package views

import (
	"iter"
	"slices"
)

// Mapped lazily applies a projection to each element. The function runs on
// every dereference of every traversal; results are never memoized, and the
// output is never writable back into the source unless the function itself
// returns pointers.
type Mapped[E, R any] struct {
	pipeline[R]
	src   Sequence[E]
	back  Bidirectional[E]
	sized Sized
	f     func(E) R
}

// Map wraps src in a projection view. The stored function is shared by
// every traversal derived from the view and must stay valid while the view
// lives.
func Map[E, R any](src Sequence[E], f func(E) R) *Mapped[E, R] {
	v := &Mapped[E, R]{
		src:   src,
		back:  backwardOf(src),
		sized: sizedOf(src),
		f:     f,
	}
	v.bind(v)
	return v
}

// MapKeys projects the key out of a sequence of pairs, such as a FromMap
// view.
func MapKeys[K, V any](src Sequence[Pair[K, V]]) *Mapped[Pair[K, V], K] {
	return Map(src, func(p Pair[K, V]) K { return p.V1 })
}

// MapValues projects the value out of a sequence of pairs.
func MapValues[K, V any](src Sequence[Pair[K, V]]) *Mapped[Pair[K, V], V] {
	return Map(src, func(p Pair[K, V]) V { return p.V2 })
}

func (v *Mapped[E, R]) Values() iter.Seq[R] {
	return func(yield func(R) bool) {
		for e := range v.src.Values() {
			if !yield(v.f(e)) {
				return
			}
		}
	}
}

func (v *Mapped[E, R]) CanBackward() bool {
	return v.back != nil
}

func (v *Mapped[E, R]) Backward() iter.Seq[R] {
	if v.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(R) bool) {
		for e := range v.back.Backward() {
			if !yield(v.f(e)) {
				return
			}
		}
	}
}

func (v *Mapped[E, R]) CanSize() bool {
	return v.sized != nil
}

func (v *Mapped[E, R]) Size() int {
	if v.sized == nil {
		panic("views: Size on unsized sequence")
	}
	return v.sized.Size()
}

func (v *Mapped[E, R]) IsEmpty() bool {
	return emptyOf(v.src)
}

func (v *Mapped[E, R]) Collect() []R {
	return slices.Collect(v.Values())
}
