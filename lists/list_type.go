package lists

import "iter"

// List is the common contract of the positional containers in this package.
// Besides the positional operations, every implementation grants the
// iteration capabilities the views package dispatches on: forward and
// reverse traversal over values and over element addresses, plus size and
// emptiness queries.
type List[T any] interface {
	// Add appends one or more elements at the end.
	Add(values ...T)

	// AddFirst prepends an element.
	AddFirst(value T)

	// Insert places value at index; index may equal Size (append).
	Insert(index int, value T) error

	// InsertAll places values at index in order.
	InsertAll(index int, values ...T) error

	// Get returns the element at index.
	Get(index int) (T, error)

	// Set replaces the element at index.
	Set(index int, value T) error

	// Remove deletes and returns the element at index.
	Remove(index int) (T, error)

	// RemoveRange deletes elements in [start, end).
	RemoveRange(start, end int) error

	// RemoveFirst and RemoveLast pop either end.
	RemoveFirst() (T, error)
	RemoveLast() (T, error)

	// First and Last peek either end.
	First() (T, error)
	Last() (T, error)

	// Swap exchanges two elements; out-of-range indices are a no-op.
	Swap(i, j int)

	// RemoveIf deletes every element the predicate accepts and returns how
	// many were removed.
	RemoveIf(predicate func(T) bool) int

	// Sort orders the list in place, stably.
	Sort(compare func(a, b T) int)

	// ContainsFunc and IndexFunc search by predicate; IndexFunc returns -1
	// when nothing matches.
	ContainsFunc(predicate func(T) bool) bool
	IndexFunc(predicate func(T) bool) int

	Size() int
	IsEmpty() bool
	Clear()

	// ToSlice copies the elements into a fresh slice.
	ToSlice() []T

	// Values, All and Backward traverse the stored values; Refs and
	// BackwardRefs traverse their addresses for in-place mutation.
	Values() iter.Seq[T]
	All() iter.Seq2[int, T]
	Backward() iter.Seq[T]
	Refs() iter.Seq[*T]
	BackwardRefs() iter.Seq[*T]
}

// FindIndex locates v in l by ==. For non-comparable element types use
// IndexFunc directly.
func FindIndex[T comparable](l List[T], v T) int {
	return l.IndexFunc(func(x T) bool {
		return x == v
	})
}
