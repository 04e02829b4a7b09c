package views

import (
	"iter"
	"slices"
)

// Dereferenced unwraps one level of pointer indirection: it traverses the
// referents of a sequence of pointers. Values yields copies of the
// referents, so a Dereferenced view reads as an immutable view; the
// underlying handles stay reachable through Refs for in-place writes.
type Dereferenced[T any] struct {
	pipeline[T]
	src   Sequence[*T]
	back  Bidirectional[*T]
	sized Sized
}

// Deref wraps a sequence of plain pointers in a dereferencing view. All
// pointers must stay valid and non-nil while the view is traversed.
func Deref[T any](src Sequence[*T]) *Dereferenced[T] {
	v := &Dereferenced[T]{
		src:   src,
		back:  backwardOf(src),
		sized: sizedOf(src),
	}
	v.bind(v)
	return v
}

func (v *Dereferenced[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range v.src.Values() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Refs yields the underlying pointers in forward order: the write path into
// the referents.
func (v *Dereferenced[T]) Refs() iter.Seq[*T] {
	return v.src.Values()
}

// BackwardRefs yields the underlying pointers back to front. It panics when
// CanBackward is false.
func (v *Dereferenced[T]) BackwardRefs() iter.Seq[*T] {
	if v.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return v.back.Backward()
}

func (v *Dereferenced[T]) CanBackward() bool {
	return v.back != nil
}

func (v *Dereferenced[T]) Backward() iter.Seq[T] {
	if v.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(T) bool) {
		for p := range v.back.Backward() {
			if !yield(*p) {
				return
			}
		}
	}
}

func (v *Dereferenced[T]) CanSize() bool {
	return v.sized != nil
}

func (v *Dereferenced[T]) Size() int {
	if v.sized == nil {
		panic("views: Size on unsized sequence")
	}
	return v.sized.Size()
}

func (v *Dereferenced[T]) IsEmpty() bool {
	return emptyOf(v.src)
}

func (v *Dereferenced[T]) Collect() []T {
	return slices.Collect(v.Values())
}

// DereferencedHandles is the smart-handle variant of Dereferenced: it
// traverses the referents of a sequence of Handle values, reaching through
// Get on every step.
type DereferencedHandles[T any, H Handle[T]] struct {
	pipeline[T]
	src   Sequence[H]
	back  Bidirectional[H]
	sized Sized
}

// DerefHandles wraps a sequence of handles in a dereferencing view. The
// referent type goes first at the call site (DerefHandles[int](boxes)); the
// handle type is inferred. Every handle must hold a referent while the view
// is traversed.
func DerefHandles[T any, H Handle[T]](src Sequence[H]) *DereferencedHandles[T, H] {
	v := &DereferencedHandles[T, H]{
		src:   src,
		back:  backwardOf(src),
		sized: sizedOf(src),
	}
	v.bind(v)
	return v
}

func (v *DereferencedHandles[T, H]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := range v.src.Values() {
			if !yield(*h.Get()) {
				return
			}
		}
	}
}

// Refs yields the referent addresses in forward order: the write path into
// the boxed values.
func (v *DereferencedHandles[T, H]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for h := range v.src.Values() {
			if !yield(h.Get()) {
				return
			}
		}
	}
}

// BackwardRefs yields the referent addresses back to front. It panics when
// CanBackward is false.
func (v *DereferencedHandles[T, H]) BackwardRefs() iter.Seq[*T] {
	if v.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(*T) bool) {
		for h := range v.back.Backward() {
			if !yield(h.Get()) {
				return
			}
		}
	}
}

func (v *DereferencedHandles[T, H]) CanBackward() bool {
	return v.back != nil
}

func (v *DereferencedHandles[T, H]) Backward() iter.Seq[T] {
	if v.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return func(yield func(T) bool) {
		for h := range v.back.Backward() {
			if !yield(*h.Get()) {
				return
			}
		}
	}
}

func (v *DereferencedHandles[T, H]) CanSize() bool {
	return v.sized != nil
}

func (v *DereferencedHandles[T, H]) Size() int {
	if v.sized == nil {
		panic("views: Size on unsized sequence")
	}
	return v.sized.Size()
}

func (v *DereferencedHandles[T, H]) IsEmpty() bool {
	return emptyOf(v.src)
}

func (v *DereferencedHandles[T, H]) Collect() []T {
	return slices.Collect(v.Values())
}

// Box is the owned-handle type for DerefHandles: NewBox copies its argument
// into a fresh referent the box alone points at. A zero Box holds no
// referent and must not be dereferenced.
type Box[T any] struct {
	ref *T
}

// NewBox boxes a copy of v.
func NewBox[T any](v T) Box[T] {
	return Box[T]{ref: &v}
}

// Get returns the referent address, or nil for a zero Box.
func (b Box[T]) Get() *T {
	return b.ref
}
