package lists

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// ErrInvalidCursor reports an operation on a cursor that is not positioned
// at a live element.
var ErrInvalidCursor = errors.New("invalid cursor position")

// LinkedListCursor is a positional handle into a LinkedList supporting
// in-place reads, writes and structural edits. A cursor parked on a
// sentinel, or on a node that has since been removed, is invalid.
type LinkedListCursor[T any] struct {
	current *node[T]
	list    *LinkedList[T]
}

// IsValid reports whether the cursor is at a live element. A removed node
// has nil links, which is how a stale cursor is detected.
func (c *LinkedListCursor[T]) IsValid() bool {
	return c.current != nil && c.current.next != nil && c.list != nil &&
		c.current != c.list.headSentinel && c.current != c.list.tailSentinel
}

// Value returns the element under the cursor, or the zero value when the
// cursor is invalid.
func (c *LinkedListCursor[T]) Value() (val T) {
	if !c.IsValid() {
		return val
	}
	return c.current.val
}

// Ref returns the address of the element under the cursor: the write
// handle for in-place mutation.
func (c *LinkedListCursor[T]) Ref() (*T, error) {
	if !c.IsValid() {
		return nil, errors.Wrap(ErrInvalidCursor, "ref")
	}
	return &c.current.val, nil
}

// Next advances the cursor one element. It parks on the tail sentinel at
// the end, so Prev can recover.
func (c *LinkedListCursor[T]) Next() {
	if c.current == nil || c.current == c.list.tailSentinel {
		return
	}
	c.current = c.current.next
}

// Prev moves the cursor back one element. It parks on the head sentinel at
// the front, so Next can recover.
func (c *LinkedListCursor[T]) Prev() {
	if c.current == nil || c.current == c.list.headSentinel {
		return
	}
	c.current = c.current.prev
}

// MoveTo repositions the cursor at index. O(n).
func (c *LinkedListCursor[T]) MoveTo(index int) error {
	if index < 0 || index >= c.list.size {
		return errors.Wrapf(ErrIndexOutOfBounds, "move to %d with size %d", index, c.list.size)
	}
	c.current = c.list.findNodeAt(index)
	return nil
}

// Seek moves the cursor by offset, forward for positive values. O(n).
func (c *LinkedListCursor[T]) Seek(offset int) error {
	if c.current == nil || c.list == nil {
		return errors.Wrap(ErrInvalidCursor, "seek")
	}
	switch {
	case offset > 0:
		for range offset {
			c.Next()
		}
	case offset < 0:
		for range -offset {
			c.Prev()
		}
	}
	return nil
}

// Index returns the position of the cursor, or -1 when invalid. O(n).
func (c *LinkedListCursor[T]) Index() int {
	if !c.IsValid() {
		return -1
	}
	index := 0
	for current := c.list.headSentinel.next; current != c.current; current = current.next {
		if current == c.list.tailSentinel {
			return -1
		}
		index++
	}
	return index
}

// Set replaces the element under the cursor.
func (c *LinkedListCursor[T]) Set(value T) error {
	if !c.IsValid() {
		return errors.Wrap(ErrInvalidCursor, "set")
	}
	c.current.val = value
	return nil
}

// Remove deletes the element under the cursor and advances to the next
// element.
func (c *LinkedListCursor[T]) Remove() (T, error) {
	if !c.IsValid() {
		var zero T
		return zero, errors.Wrap(ErrInvalidCursor, "remove")
	}
	next := c.current.next
	val := c.list.removeNode(c.current)
	c.current = next
	return val, nil
}

// InsertAfter places value directly after the cursor.
func (c *LinkedListCursor[T]) InsertAfter(value T) error {
	if !c.IsValid() {
		return errors.Wrap(ErrInvalidCursor, "insert after")
	}
	c.list.insertNodeAt(c.current, &node[T]{val: value})
	return nil
}

// InsertBefore places value directly before the cursor. It is also allowed
// on the tail sentinel, which appends and is the way to seed an empty
// list:
//
//	l := lists.NewLinkedList[int]()
//	c := l.FrontCursor() // empty list: parked on the tail sentinel
//	c.InsertBefore(1)
func (c *LinkedListCursor[T]) InsertBefore(value T) error {
	if !c.IsValid() && c.current != c.list.tailSentinel {
		return errors.Wrap(ErrInvalidCursor, "insert before")
	}
	c.list.insertNodeAt(c.current.prev, &node[T]{val: value})
	return nil
}

func (c *LinkedListCursor[T]) String() string {
	if c.IsValid() {
		return fmt.Sprintf("Cursor[%v]", c.current.val)
	}
	return "Cursor[invalid]"
}

// Seq traverses from the cursor position to the end without moving the
// cursor.
func (c *LinkedListCursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !c.IsValid() {
			return
		}
		for current := c.current; current != nil && current != c.list.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

// BackwardSeq traverses from the cursor position to the front without
// moving the cursor.
func (c *LinkedListCursor[T]) BackwardSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !c.IsValid() {
			return
		}
		for current := c.current; current != nil && current != c.list.headSentinel; current = current.prev {
			if !yield(current.val) {
				return
			}
		}
	}
}

// Clone returns an independent cursor at the same position.
func (c *LinkedListCursor[T]) Clone() *LinkedListCursor[T] {
	return &LinkedListCursor[T]{current: c.current, list: c.list}
}

// CursorAt returns a cursor positioned at index.
func (ll *LinkedList[T]) CursorAt(index int) (*LinkedListCursor[T], error) {
	if index < 0 || index >= ll.size {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "cursor at %d with size %d", index, ll.size)
	}
	return &LinkedListCursor[T]{current: ll.findNodeAt(index), list: ll}, nil
}

// FrontCursor returns a cursor at the first element; on an empty list it is
// parked on the tail sentinel and invalid.
func (ll *LinkedList[T]) FrontCursor() *LinkedListCursor[T] {
	return &LinkedListCursor[T]{current: ll.headSentinel.next, list: ll}
}

// BackCursor returns a cursor at the last element; on an empty list it is
// parked on the head sentinel and invalid.
func (ll *LinkedList[T]) BackCursor() *LinkedListCursor[T] {
	return &LinkedListCursor[T]{current: ll.tailSentinel.prev, list: ll}
}
