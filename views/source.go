package views

import (
	"iter"
	"slices"
)

// sliceSource adapts a slice as a bidirectional, sized sequence of values.
type sliceSource[E any] struct {
	data []E
}

func (s sliceSource[E]) Values() iter.Seq[E] {
	return slices.Values(s.data)
}

func (s sliceSource[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for i := len(s.data) - 1; i >= 0; i-- {
			if !yield(s.data[i]) {
				return
			}
		}
	}
}

func (s sliceSource[E]) Size() int {
	return len(s.data)
}

func (s sliceSource[E]) IsEmpty() bool {
	return len(s.data) == 0
}

// refSliceSource adapts a slice as a bidirectional, sized sequence of
// element addresses. Writes through the yielded pointers land in the slice.
type refSliceSource[T any] struct {
	data []T
}

func (s refSliceSource[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s.data {
			if !yield(&s.data[i]) {
				return
			}
		}
	}
}

func (s refSliceSource[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := len(s.data) - 1; i >= 0; i-- {
			if !yield(&s.data[i]) {
				return
			}
		}
	}
}

func (s refSliceSource[T]) Size() int {
	return len(s.data)
}

func (s refSliceSource[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// seqSource adapts a bare iterator closure: forward-only, unsized.
// Restartability follows the wrapped closure; sources built from iter.Pull
// yield their elements to the first traversal only.
type seqSource[E any] struct {
	seq iter.Seq[E]
}

func (s seqSource[E]) Values() iter.Seq[E] {
	return s.seq
}

// refSeqSource adapts a container's Refs capability as a sequence of
// pointers, with gated reverse and size capabilities.
type refSeqSource[T any] struct {
	src   RefSequence[T]
	back  RefBidirectional[T]
	sized Sized
}

func (s refSeqSource[T]) Values() iter.Seq[*T] {
	return s.src.Refs()
}

func (s refSeqSource[T]) Backward() iter.Seq[*T] {
	if s.back == nil {
		panic("views: Backward on forward-only sequence")
	}
	return s.back.BackwardRefs()
}

func (s refSeqSource[T]) CanBackward() bool {
	return s.back != nil
}

func (s refSeqSource[T]) Size() int {
	if s.sized == nil {
		panic("views: Size on unsized sequence")
	}
	return s.sized.Size()
}

func (s refSeqSource[T]) CanSize() bool {
	return s.sized != nil
}

// mapSource adapts a map as a forward-only, sized sequence of key/value
// pairs. Traversal order follows map iteration order.
type mapSource[K comparable, V any] struct {
	m map[K]V
}

func (s mapSource[K, V]) Values() iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range s.m {
			if !yield(Pair[K, V]{V1: k, V2: v}) {
				return
			}
		}
	}
}

func (s mapSource[K, V]) Size() int {
	return len(s.m)
}

func (s mapSource[K, V]) IsEmpty() bool {
	return len(s.m) == 0
}

// Of builds a view over its arguments. The elements are copied into a fresh
// backing slice owned by the view alone.
func Of[E any](vs ...E) *Iterated[E] {
	return Iterate[E](sliceSource[E]{data: slices.Clone(vs)})
}

// FromSlice builds a view borrowing s. The caller keeps ownership and must
// not resize s while the view is in use. Elements are read-only; use
// SliceRefs for write access.
func FromSlice[E any](s []E) *Iterated[E] {
	return Iterate[E](sliceSource[E]{data: s})
}

// SliceRefs builds a writable view over s: traversal yields the address of
// each element, valid as long as the slice is not resized.
func SliceRefs[T any](s []T) *Iterated[*T] {
	return Iterate[*T](refSliceSource[T]{data: s})
}

// Refs builds a writable view over any container granting reference access.
// The view is bidirectional when the container implements RefBidirectional
// and sized when it implements Sized.
func Refs[T any](src RefSequence[T]) *Iterated[*T] {
	s := refSeqSource[T]{src: src, sized: sizedOf(src)}
	if b, ok := src.(RefBidirectional[T]); ok {
		if g, ok := src.(backwardGated); !ok || g.CanBackward() {
			s.back = b
		}
	}
	return Iterate[*T](s)
}

// FromSeq builds a forward-only, unsized view over a bare iterator.
func FromSeq[E any](seq iter.Seq[E]) *Iterated[E] {
	return Iterate[E](seqSource[E]{seq: seq})
}

// FromMap builds a forward-only, sized view over the entries of m, in map
// iteration order.
func FromMap[K comparable, V any](m map[K]V) *Iterated[Pair[K, V]] {
	return Iterate[Pair[K, V]](mapSource[K, V]{m: m})
}

// Range builds a generator view counting from start toward end (exclusive)
// by step. A zero step yields nothing.
func Range(start, end, step int) *Iterated[int] {
	return FromSeq(func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	})
}

// Repeat builds a generator view yielding value count times.
func Repeat[E any](value E, count int) *Iterated[E] {
	return FromSeq(func(yield func(E) bool) {
		for range count {
			if !yield(value) {
				return
			}
		}
	})
}
