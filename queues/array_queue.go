package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a generic queue implementation using a circular array (ring buffer).
// It supports efficient enqueue and dequeue operations with amortized O(1) time complexity.
//
// The queue is iterable front to back via Values and Refs, and reports its
// size, so it works as a sized forward-only source for the views package.
type ArrayQueue[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the queue
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewArrayQueue creates a new ArrayQueue with the specified initial capacity.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}

	// compute capacity as the next power of two >= initialCapacity
	var capacity int
	if initialCapacity <= 1 {
		capacity = 1
	} else {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		head: 0,
		size: 0,
		mask: capacity - 1,
	}
}

// resize resizes the underlying buffer.
// If isShrink is true, it shrinks the buffer to fit the current size.
// If isShrink is false, it grows to hold size+capDiff elements.
// All capacities are powers of two.
func (aq *ArrayQueue[T]) resize(capDiff int, isShrink bool) {
	var newCapacity int
	switch {
	case isShrink && aq.size == 0:
		newCapacity = 1
	case isShrink:
		newCapacity = 1 << uint(bits.Len(uint(aq.size-1)))
	default:
		newCapacity = 1 << uint(bits.Len(uint(aq.size+capDiff-1)))
	}

	newBuf := make([]T, newCapacity)
	aq.copyOut(newBuf)

	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = newCapacity - 1
}

// copyOut copies the queue contents into dst in FIFO order. dst must hold at
// least aq.size elements.
func (aq *ArrayQueue[T]) copyOut(dst []T) {
	if aq.head+aq.size <= len(aq.buf) {
		// not wrapped around
		copy(dst, aq.buf[aq.head:aq.head+aq.size])
		return
	}
	// wrapped around: head to end, then start to tail
	n := copy(dst, aq.buf[aq.head:])
	tailPos := (aq.head + aq.size) & aq.mask
	copy(dst[n:], aq.buf[:tailPos])
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.resize(1, false)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if aq.size+n > len(aq.buf) {
		aq.resize(n, false)
	}
	tail := (aq.head + aq.size) & aq.mask
	if tail+n <= len(aq.buf) {
		copy(aq.buf[tail:], values)
	} else {
		// wrapped around
		part1Len := len(aq.buf) - tail
		copy(aq.buf[tail:], values[:part1Len])
		copy(aq.buf, values[part1Len:])
	}
	aq.size += n
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

// DequeueBatchInto removes up to len(dst) elements from the front of the
// queue into dst and returns how many were moved. It never allocates.
func (aq *ArrayQueue[T]) DequeueBatchInto(dst []T) int {
	n := len(dst)
	if n > aq.size {
		n = aq.size
	}
	if n == 0 {
		return 0
	}
	if aq.head+n <= len(aq.buf) {
		copy(dst, aq.buf[aq.head:aq.head+n])
		clear(aq.buf[aq.head : aq.head+n])
	} else {
		// wrapped around
		part1Len := len(aq.buf) - aq.head
		copy(dst, aq.buf[aq.head:])
		copy(dst[part1Len:], aq.buf[:n-part1Len])
		clear(aq.buf[aq.head:])
		clear(aq.buf[:n-part1Len])
	}
	aq.head = (aq.head + n) & aq.mask
	aq.size -= n
	return n
}

// DequeueBatch removes and returns up to maxElements elements from the front
// of the queue in a freshly allocated slice.
func (aq *ArrayQueue[T]) DequeueBatch(maxElements int) (values []T) {
	if aq.size == 0 || maxElements <= 0 {
		return nil
	}
	if maxElements > aq.size {
		maxElements = aq.size
	}
	values = make([]T, maxElements)
	aq.DequeueBatchInto(values)
	return values
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

func (aq *ArrayQueue[T]) ResizeToFit() {
	aq.resize(0, true)
}

// ToSlice returns the queue contents front to back without draining.
func (aq *ArrayQueue[T]) ToSlice() []T {
	out := make([]T, aq.size)
	aq.copyOut(out)
	return out
}

// Values yields the elements front to back without draining the queue.
func (aq *ArrayQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < aq.size; i++ {
			if !yield(aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}

// Refs yields addresses of the queued elements front to back, for in-place
// mutation. Handles stay valid until the buffer resizes.
func (aq *ArrayQueue[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := 0; i < aq.size; i++ {
			if !yield(&aq.buf[(aq.head+i)&aq.mask]) {
				return
			}
		}
	}
}
