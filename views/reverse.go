package views

import (
	"iter"
	"slices"
)

// Reversed traverses its source back to front. Reversing a reversed view
// restores the original order.
type Reversed[E any] struct {
	pipeline[E]
	src   Bidirectional[E]
	sized Sized
}

// Reverse wraps src in a reversal view. Bidirectionality is a hard
// precondition: types without a Backward method do not compile here, and a
// view whose reverse capability was lost upstream panics at construction.
func Reverse[E any](src Bidirectional[E]) *Reversed[E] {
	if backwardOf[E](src) == nil {
		panic("views: Reverse of forward-only sequence")
	}
	v := &Reversed[E]{
		src:   src,
		sized: sizedOf(src),
	}
	v.bind(v)
	return v
}

func (v *Reversed[E]) Values() iter.Seq[E] {
	return v.src.Backward()
}

// CanBackward always reports true: the reverse of a reversal is the
// original forward traversal.
func (v *Reversed[E]) CanBackward() bool {
	return true
}

func (v *Reversed[E]) Backward() iter.Seq[E] {
	return v.src.Values()
}

func (v *Reversed[E]) CanSize() bool {
	return v.sized != nil
}

func (v *Reversed[E]) Size() int {
	if v.sized == nil {
		panic("views: Size on unsized sequence")
	}
	return v.sized.Size()
}

func (v *Reversed[E]) IsEmpty() bool {
	return emptyOf[E](v.src)
}

func (v *Reversed[E]) Collect() []E {
	return slices.Collect(v.Values())
}
