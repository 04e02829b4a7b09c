package views

import (
	"iter"
	"slices"
)

// Enumerated pairs each element with its zero-based position. Its elements
// are Item values, so an enumerated view can be filtered, mapped and zipped
// like any other.
type Enumerated[E any] struct {
	pipeline[Item[E]]
	src   Sequence[E]
	back  Bidirectional[E]
	sized Sized
}

// Enumerate wraps src in a position-pairing view. Reverse traversal counts
// positions down from Size()-1 and is therefore available only when src is
// both bidirectional and sized.
func Enumerate[E any](src Sequence[E]) *Enumerated[E] {
	v := &Enumerated[E]{
		src:   src,
		back:  backwardOf(src),
		sized: sizedOf(src),
	}
	v.bind(v)
	return v
}

func (v *Enumerated[E]) Values() iter.Seq[Item[E]] {
	return func(yield func(Item[E]) bool) {
		pos := 0
		for e := range v.src.Values() {
			if !yield(Item[E]{Pos: pos, Val: e}) {
				return
			}
			pos++
		}
	}
}

// All is the range-friendly form of Values, yielding position and element
// as a pair.
func (v *Enumerated[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		pos := 0
		for e := range v.src.Values() {
			if !yield(pos, e) {
				return
			}
			pos++
		}
	}
}

func (v *Enumerated[E]) CanBackward() bool {
	return v.back != nil && v.sized != nil
}

// Backward traverses from the end with positions counting down from
// Size()-1. It panics when CanBackward is false.
func (v *Enumerated[E]) Backward() iter.Seq[Item[E]] {
	if !v.CanBackward() {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(Item[E]) bool) {
		pos := v.sized.Size() - 1
		for e := range v.back.Backward() {
			if !yield(Item[E]{Pos: pos, Val: e}) {
				return
			}
			pos--
		}
	}
}

func (v *Enumerated[E]) CanSize() bool {
	return v.sized != nil
}

func (v *Enumerated[E]) Size() int {
	if v.sized == nil {
		panic("views: Size on unsized sequence")
	}
	return v.sized.Size()
}

func (v *Enumerated[E]) IsEmpty() bool {
	return emptyOf(v.src)
}

func (v *Enumerated[E]) Collect() []Item[E] {
	return slices.Collect(v.Values())
}
