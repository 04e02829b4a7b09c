package views

import "iter"

// Sequence is the minimal capability a source must provide: a forward
// traversal over its elements.
//
// Any type with a Values method qualifies, including every container in
// vista/lists and vista/queues and every view in this package.
type Sequence[E any] interface {
	Values() iter.Seq[E]
}

// Bidirectional is a Sequence that can also be traversed from the end
// backward.
type Bidirectional[E any] interface {
	Sequence[E]
	Backward() iter.Seq[E]
}

// Sized is implemented by sources that can report their element count
// without traversing.
type Sized interface {
	Size() int
}

// RefSequence is the writable access path a container may grant: a forward
// traversal over element addresses. Writing through the yielded pointers
// mutates the container.
type RefSequence[T any] interface {
	Refs() iter.Seq[*T]
}

// RefBidirectional grants writable access in both directions.
type RefBidirectional[T any] interface {
	RefSequence[T]
	BackwardRefs() iter.Seq[*T]
}

// Handle is a smart-handle element type: a box holding the address of its
// referent. DerefHandles unwraps sequences of handles.
type Handle[T any] interface {
	Get() *T
}

// backwardGated and sizeGated are the dynamic capability gates views expose.
// A plain container either has the method or it doesn't; a view always has
// it and reports through the gate whether it actually works.
type backwardGated interface {
	CanBackward() bool
}

type sizeGated interface {
	CanSize() bool
}

type emptier interface {
	IsEmpty() bool
}

// backwardOf resolves the reverse-traversal capability of src once, at
// construction. It returns nil when src cannot be walked backward.
func backwardOf[E any](src Sequence[E]) Bidirectional[E] {
	b, ok := src.(Bidirectional[E])
	if !ok {
		return nil
	}
	if g, ok := src.(backwardGated); ok && !g.CanBackward() {
		return nil
	}
	return b
}

// sizedOf resolves the size capability of src once, at construction. It
// returns nil when src cannot report a size.
func sizedOf(src any) Sized {
	s, ok := src.(Sized)
	if !ok {
		return nil
	}
	if g, ok := src.(sizeGated); ok && !g.CanSize() {
		return nil
	}
	return s
}

// emptyOf reports whether src has no elements, using the cheapest evidence
// available: an IsEmpty method, then a size query, then a first-element
// probe of the forward traversal.
func emptyOf[E any](src Sequence[E]) bool {
	if e, ok := src.(emptier); ok {
		return e.IsEmpty()
	}
	if s := sizedOf(src); s != nil {
		return s.Size() == 0
	}
	for range src.Values() {
		return false
	}
	return true
}
