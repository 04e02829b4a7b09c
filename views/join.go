package views

import (
	"iter"
	"slices"
)

// Joined concatenates two sequences of the same element type: all of the
// first, then all of the second. Reverse traversal walks the second
// backward, then the first backward.
type Joined[E any] struct {
	pipeline[E]
	first       Sequence[E]
	second      Sequence[E]
	backFirst   Bidirectional[E]
	backSecond  Bidirectional[E]
	sizedFirst  Sized
	sizedSecond Sized
}

// Join wraps two sequences in a concatenation view. Both must share one
// element type; joining a writable pipeline with a read-only one therefore
// requires collapsing the writable side first, which keeps the combined
// view's access mode the weaker of the two.
func Join[E any](first, second Sequence[E]) *Joined[E] {
	v := &Joined[E]{
		first:       first,
		second:      second,
		backFirst:   backwardOf(first),
		backSecond:  backwardOf(second),
		sizedFirst:  sizedOf(first),
		sizedSecond: sizedOf(second),
	}
	v.bind(v)
	return v
}

func (v *Joined[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range v.first.Values() {
			if !yield(e) {
				return
			}
		}
		for e := range v.second.Values() {
			if !yield(e) {
				return
			}
		}
	}
}

func (v *Joined[E]) CanBackward() bool {
	return v.backFirst != nil && v.backSecond != nil
}

func (v *Joined[E]) Backward() iter.Seq[E] {
	if !v.CanBackward() {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(E) bool) {
		for e := range v.backSecond.Backward() {
			if !yield(e) {
				return
			}
		}
		for e := range v.backFirst.Backward() {
			if !yield(e) {
				return
			}
		}
	}
}

func (v *Joined[E]) CanSize() bool {
	return v.sizedFirst != nil && v.sizedSecond != nil
}

// Size is the sum of both sides. It panics when CanSize is false.
func (v *Joined[E]) Size() int {
	if !v.CanSize() {
		panic("views: Size on unsized sequence")
	}
	return v.sizedFirst.Size() + v.sizedSecond.Size()
}

func (v *Joined[E]) IsEmpty() bool {
	return emptyOf(v.first) && emptyOf(v.second)
}

func (v *Joined[E]) Collect() []E {
	return slices.Collect(v.Values())
}
