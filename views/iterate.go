package views

import (
	"iter"
	"slices"
)

// Iterated is the pass-through view: same elements, same order, same access
// mode as the wrapped sequence. It is also what every source entry point
// returns, so it is the usual head of a pipeline.
type Iterated[E any] struct {
	pipeline[E]
	src   Sequence[E]
	back  Bidirectional[E]
	sized Sized
}

// Iterate wraps src in a pass-through view. Capabilities are resolved here,
// once: the view is bidirectional and sized exactly when src is.
func Iterate[E any](src Sequence[E]) *Iterated[E] {
	v := &Iterated[E]{
		src:   src,
		back:  backwardOf(src),
		sized: sizedOf(src),
	}
	v.bind(v)
	return v
}

func (v *Iterated[E]) Values() iter.Seq[E] {
	return v.src.Values()
}

// CanBackward reports whether reverse traversal is available.
func (v *Iterated[E]) CanBackward() bool {
	return v.back != nil
}

// Backward traverses from the end. It panics when CanBackward is false.
func (v *Iterated[E]) Backward() iter.Seq[E] {
	if v.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return v.back.Backward()
}

// CanSize reports whether Size is available without traversing.
func (v *Iterated[E]) CanSize() bool {
	return v.sized != nil
}

// Size reports the element count. It panics when CanSize is false.
func (v *Iterated[E]) Size() int {
	if v.sized == nil {
		panic("views: Size on unsized sequence")
	}
	return v.sized.Size()
}

func (v *Iterated[E]) IsEmpty() bool {
	return emptyOf(v.src)
}

// Collect materializes the forward traversal into a fresh slice.
func (v *Iterated[E]) Collect() []E {
	return slices.Collect(v.Values())
}
