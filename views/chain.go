package views

import (
	"iter"
	"slices"
)

// Chained flattens a sequence of sequences, walking each inner sequence in
// order. Empty inners anywhere in the outer sequence contribute nothing:
// content, emptiness and size are defined by "any element anywhere", not by
// the structural shape.
type Chained[E any, S Sequence[E]] struct {
	pipeline[E]
	outer      Sequence[S]
	backOuter  Bidirectional[S]
	outerSized Sized
	innerBack  bool
	innerSized bool
}

// Chain wraps an outer sequence of inner sequences in a flattening view.
// The element type goes first at the call site (Chain[int](outer)); the
// inner type is inferred.
//
// Inner capabilities are resolved from the inner TYPE: reverse traversal
// needs the outer sequence and the inner type to be bidirectional, size
// needs both to be sized. An inner view whose own capability was lost
// upstream still type-checks and panics during traversal.
func Chain[E any, S Sequence[E]](outer Sequence[S]) *Chained[E, S] {
	var probe S
	_, innerBack := any(probe).(Bidirectional[E])
	_, innerSized := any(probe).(Sized)
	v := &Chained[E, S]{
		outer:      outer,
		backOuter:  backwardOf(outer),
		outerSized: sizedOf(outer),
		innerBack:  innerBack,
		innerSized: innerSized,
	}
	v.bind(v)
	return v
}

func (v *Chained[E, S]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for inner := range v.outer.Values() {
			for e := range inner.Values() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (v *Chained[E, S]) CanBackward() bool {
	return v.backOuter != nil && v.innerBack
}

// Backward walks the outer sequence backward and each inner sequence
// backward within it.
func (v *Chained[E, S]) Backward() iter.Seq[E] {
	if !v.CanBackward() {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(E) bool) {
		for inner := range v.backOuter.Backward() {
			for e := range any(inner).(Bidirectional[E]).Backward() {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (v *Chained[E, S]) CanSize() bool {
	return v.outerSized != nil && v.innerSized
}

// Size is the sum of the inner sizes. It panics when CanSize is false.
func (v *Chained[E, S]) Size() int {
	if !v.CanSize() {
		panic("views: Size on unsized sequence")
	}
	total := 0
	for inner := range v.outer.Values() {
		total += any(inner).(Sized).Size()
	}
	return total
}

// IsEmpty reports whether no inner sequence holds any element.
func (v *Chained[E, S]) IsEmpty() bool {
	for inner := range v.outer.Values() {
		for range inner.Values() {
			return false
		}
	}
	return true
}

func (v *Chained[E, S]) Collect() []E {
	return slices.Collect(v.Values())
}
