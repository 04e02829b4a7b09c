package lists

import (
	"fmt"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// ErrIndexOutOfBounds reports a positional operation outside [0, Size).
// Returned errors wrap it with the offending index, so match with
// errors.Is.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ArrayList is a slice-backed list. Element addresses handed out by Refs
// stay valid until the backing slice grows.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (l *ArrayList[T]) Add(values ...T) {
	l.data = append(l.data, values...)
}

func (l *ArrayList[T]) AddFirst(value T) {
	l.Insert(0, value)
}

func (l *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(l.data) {
		return errors.Wrapf(ErrIndexOutOfBounds, "insert at %d with size %d", index, len(l.data))
	}
	var zero T
	l.data = append(l.data, zero)
	copy(l.data[index+1:], l.data[index:])
	l.data[index] = value
	return nil
}

// InsertAll inserts values at index with a single grow and a single shift.
func (l *ArrayList[T]) InsertAll(index int, values ...T) error {
	if index < 0 || index > len(l.data) {
		return errors.Wrapf(ErrIndexOutOfBounds, "insert at %d with size %d", index, len(l.data))
	}
	n := len(values)
	if n == 0 {
		return nil
	}

	oldLen := len(l.data)
	newLen := oldLen + n

	if newLen > cap(l.data) {
		grown := make([]T, newLen, max(newLen, 2*oldLen))
		copy(grown, l.data[:index])
		copy(grown[index+n:], l.data[index:])
		copy(grown[index:], values)
		l.data = grown
		return nil
	}

	l.data = l.data[:newLen]
	copy(l.data[index+n:], l.data[index:])
	copy(l.data[index:], values)
	return nil
}

func (l *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.data) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "get at %d with size %d", index, len(l.data))
	}
	return l.data[index], nil
}

func (l *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(l.data) {
		return errors.Wrapf(ErrIndexOutOfBounds, "set at %d with size %d", index, len(l.data))
	}
	l.data[index] = value
	return nil
}

func (l *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(l.data) {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "remove at %d with size %d", index, len(l.data))
	}
	removed := l.data[index]
	copy(l.data[index:], l.data[index+1:])
	// release the vacated tail slot for GC
	clear(l.data[len(l.data)-1:])
	l.data = l.data[:len(l.data)-1]
	return removed, nil
}

// RemoveRange deletes elements in [start, end).
func (l *ArrayList[T]) RemoveRange(start, end int) error {
	if start < 0 || end > len(l.data) || start > end {
		return errors.Wrapf(ErrIndexOutOfBounds, "remove range [%d, %d) with size %d", start, end, len(l.data))
	}
	if start == end {
		return nil
	}
	copy(l.data[start:], l.data[end:])
	newLen := len(l.data) - (end - start)
	clear(l.data[newLen:])
	l.data = l.data[:newLen]
	return nil
}

func (l *ArrayList[T]) RemoveFirst() (T, error) {
	return l.Remove(0)
}

func (l *ArrayList[T]) RemoveLast() (T, error) {
	return l.Remove(len(l.data) - 1)
}

func (l *ArrayList[T]) First() (T, error) {
	return l.Get(0)
}

func (l *ArrayList[T]) Last() (T, error) {
	return l.Get(len(l.data) - 1)
}

func (l *ArrayList[T]) Swap(i, j int) {
	if i < 0 || i >= len(l.data) || j < 0 || j >= len(l.data) {
		return
	}
	l.data[i], l.data[j] = l.data[j], l.data[i]
}

func (l *ArrayList[T]) RemoveIf(predicate func(T) bool) int {
	before := len(l.data)
	l.data = slices.DeleteFunc(l.data, predicate)
	return before - len(l.data)
}

func (l *ArrayList[T]) Sort(compare func(a, b T) int) {
	slices.SortStableFunc(l.data, compare)
}

func (l *ArrayList[T]) ContainsFunc(predicate func(T) bool) bool {
	return slices.ContainsFunc(l.data, predicate)
}

func (l *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(l.data, predicate)
}

func (l *ArrayList[T]) Size() int {
	return len(l.data)
}

func (l *ArrayList[T]) IsEmpty() bool {
	return len(l.data) == 0
}

func (l *ArrayList[T]) Clear() {
	clear(l.data)
	l.data = l.data[:0]
}

// ResizeToFit drops spare capacity once the list stops growing.
func (l *ArrayList[T]) ResizeToFit() {
	l.data = slices.Clip(l.data)
}

func (l *ArrayList[T]) ToSlice() []T {
	return slices.Clone(l.data)
}

// Clone copies the elements into a new list. Pointer elements share their
// referents.
func (l *ArrayList[T]) Clone() *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(l.data)}
}

func (l *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", l.data)
}

func (l *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(l.data)
}

func (l *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(l.data)
}

func (l *ArrayList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(l.data) - 1; i >= 0; i-- {
			if !yield(l.data[i]) {
				return
			}
		}
	}
}

// Refs yields the address of each element in order. Addresses are valid
// until the backing slice grows.
func (l *ArrayList[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range l.data {
			if !yield(&l.data[i]) {
				return
			}
		}
	}
}

func (l *ArrayList[T]) BackwardRefs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := len(l.data) - 1; i >= 0; i-- {
			if !yield(&l.data[i]) {
				return
			}
		}
	}
}
