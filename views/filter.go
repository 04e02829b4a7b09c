package views

import (
	"iter"
	"slices"
)

// Filtered yields only the elements its predicate accepts, scanning past
// rejected runs in either direction. Dereferencing is always safe: the
// traversal never stops on a rejected element.
type Filtered[E any] struct {
	pipeline[E]
	src   Sequence[E]
	back  Bidirectional[E]
	sized Sized
	pred  func(E) bool
}

// Filter wraps src in a predicate view. The stored predicate is shared by
// every traversal derived from the view and must stay valid while the view
// lives.
func Filter[E any](src Sequence[E], pred func(E) bool) *Filtered[E] {
	v := &Filtered[E]{
		src:   src,
		back:  backwardOf(src),
		sized: sizedOf(src),
		pred:  pred,
	}
	v.bind(v)
	return v
}

func (v *Filtered[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range v.src.Values() {
			if v.pred(e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func (v *Filtered[E]) CanBackward() bool {
	return v.back != nil
}

func (v *Filtered[E]) Backward() iter.Seq[E] {
	if v.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(E) bool) {
		for e := range v.back.Backward() {
			if v.pred(e) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// CanSize mirrors the source: accepted elements can only be counted when
// the underlying scan is known to terminate.
func (v *Filtered[E]) CanSize() bool {
	return v.sized != nil
}

// Size counts the accepted elements with a full scan, on every call; the
// count is never cached. It panics when CanSize is false.
func (v *Filtered[E]) Size() int {
	if v.sized == nil {
		panic("views: Size on unsized sequence")
	}
	n := 0
	for e := range v.src.Values() {
		if v.pred(e) {
			n++
		}
	}
	return n
}

// IsEmpty scans until the first accepted element, on every call.
func (v *Filtered[E]) IsEmpty() bool {
	for e := range v.src.Values() {
		if v.pred(e) {
			return false
		}
	}
	return true
}

func (v *Filtered[E]) Collect() []E {
	return slices.Collect(v.Values())
}
