package views

import (
	"iter"
	"slices"
)

// Zipped pairs two sequences element by element and ends as soon as either
// side is exhausted. Each Pair keeps the access mode of its side: zipping a
// pointer pipeline with a value pipeline yields one writable and one
// read-only field.
type Zipped[A, B any] struct {
	pipeline[Pair[A, B]]
	first       Sequence[A]
	second      Sequence[B]
	backFirst   Bidirectional[A]
	backSecond  Bidirectional[B]
	sizedFirst  Sized
	sizedSecond Sized
}

// Zip wraps two sequences in a pairing view. Unlike Join, the element types
// may differ.
func Zip[A, B any](first Sequence[A], second Sequence[B]) *Zipped[A, B] {
	v := &Zipped[A, B]{
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

func (v *Zipped[A, B]) Values() iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(v.second.Values())
		defer stop()

		for a := range v.first.Values() {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{V1: a, V2: b}) {
				return
			}
		}
	}
}

func (v *Zipped[A, B]) CanBackward() bool {
	return v.backFirst != nil && v.backSecond != nil
}

// Backward pairs from the back of both sides under the same
// shorter-side-ends rule. When the sides differ in length the reverse pairs
// are taken from the tails, so they are not the forward pairs in reverse
// order.
func (v *Zipped[A, B]) Backward() iter.Seq[Pair[A, B]] {
	if !v.CanBackward() {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(Pair[A, B]) bool) {
		next, stop := iter.Pull(v.backSecond.Backward())
		defer stop()

		for a := range v.backFirst.Backward() {
			b, ok := next()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{V1: a, V2: b}) {
				return
			}
		}
	}
}

func (v *Zipped[A, B]) CanSize() bool {
	return v.sizedFirst != nil && v.sizedSecond != nil
}

// Size is the smaller of the two sides. It panics when CanSize is false.
func (v *Zipped[A, B]) Size() int {
	if !v.CanSize() {
		panic("views: Size on unsized sequence")
	}
	return min(v.sizedFirst.Size(), v.sizedSecond.Size())
}

func (v *Zipped[A, B]) IsEmpty() bool {
	return emptyOf(v.first) || emptyOf(v.second)
}

func (v *Zipped[A, B]) Collect() []Pair[A, B] {
	return slices.Collect(v.Values())
}
