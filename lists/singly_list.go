package lists

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

type snode[T any] struct {
	next *snode[T]
	val  T
}

// SinglyLinkedList is a forward-only list: single links, O(1) append and
// prepend, no reverse traversal. It deliberately has no Backward method, so
// views.Reverse over it does not compile.
type SinglyLinkedList[T any] struct {
	head *snode[T]
	tail *snode[T]
	size int
}

func NewSinglyLinkedList[T any]() *SinglyLinkedList[T] {
	return &SinglyLinkedList[T]{}
}

func (sl *SinglyLinkedList[T]) Add(values ...T) {
	for _, value := range values {
		n := &snode[T]{val: value}
		if sl.tail == nil {
			sl.head = n
		} else {
			sl.tail.next = n
		}
		sl.tail = n
		sl.size++
	}
}

func (sl *SinglyLinkedList[T]) AddFirst(value T) {
	n := &snode[T]{val: value, next: sl.head}
	sl.head = n
	if sl.tail == nil {
		sl.tail = n
	}
	sl.size++
}

func (sl *SinglyLinkedList[T]) RemoveFirst() (T, error) {
	if sl.head == nil {
		var zero T
		return zero, errors.Wrap(ErrIndexOutOfBounds, "remove first of empty list")
	}
	n := sl.head
	sl.head = n.next
	if sl.head == nil {
		sl.tail = nil
	}
	n.next = nil
	sl.size--
	return n.val, nil
}

func (sl *SinglyLinkedList[T]) First() (T, error) {
	if sl.head == nil {
		var zero T
		return zero, errors.Wrap(ErrIndexOutOfBounds, "first of empty list")
	}
	return sl.head.val, nil
}

func (sl *SinglyLinkedList[T]) Size() int {
	return sl.size
}

func (sl *SinglyLinkedList[T]) IsEmpty() bool {
	return sl.size == 0
}

func (sl *SinglyLinkedList[T]) Clear() {
	var zero T
	for current := sl.head; current != nil; {
		next := current.next
		current.next = nil
		current.val = zero
		current = next
	}
	sl.head = nil
	sl.tail = nil
	sl.size = 0
}

func (sl *SinglyLinkedList[T]) ContainsFunc(predicate func(T) bool) bool {
	for current := sl.head; current != nil; current = current.next {
		if predicate(current.val) {
			return true
		}
	}
	return false
}

func (sl *SinglyLinkedList[T]) IndexFunc(predicate func(T) bool) int {
	index := 0
	for current := sl.head; current != nil; current = current.next {
		if predicate(current.val) {
			return index
		}
		index++
	}
	return -1
}

func (sl *SinglyLinkedList[T]) ToSlice() []T {
	out := make([]T, 0, sl.size)
	for current := sl.head; current != nil; current = current.next {
		out = append(out, current.val)
	}
	return out
}

func (sl *SinglyLinkedList[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for current := sl.head; current != nil; current = current.next {
		fmt.Fprintf(&b, "%v", current.val)
		if current.next != nil {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

func (sl *SinglyLinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := sl.head; current != nil; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (sl *SinglyLinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for current := sl.head; current != nil; current = current.next {
			if !yield(index, current.val) {
				return
			}
			index++
		}
	}
}

// Refs yields the address of each node's value in order. An address stays
// valid until its node is removed.
func (sl *SinglyLinkedList[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for current := sl.head; current != nil; current = current.next {
			if !yield(&current.val) {
				return
			}
		}
	}
}
