package lists

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly-linked list with head and tail sentinels. Element
// addresses handed out by Refs point at node storage and stay valid until
// the node is removed.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// insertNodeAt links newNode in directly after at. Bounds checking is the
// caller's job.
func (ll *LinkedList[T]) insertNodeAt(at *node[T], newNode *node[T]) {
	newNode.prev = at
	newNode.next = at.next
	at.next.prev = newNode
	at.next = newNode
	ll.size++
}

// findNodeAt walks to the node at index, from whichever end is closer.
// index == size resolves to the tail sentinel. Bounds checking is the
// caller's job.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// removeNode unlinks target and returns its value. The node's links and
// value are cleared so detached cursors can detect the removal and the GC
// can reclaim the referent.
func (ll *LinkedList[T]) removeNode(target *node[T]) T {
	target.prev.next = target.next
	target.next.prev = target.prev
	res := target.val
	target.prev = nil
	target.next = nil
	var zero T
	target.val = zero
	ll.size--
	return res
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertNodeAt(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertNodeAt(ll.headSentinel, &node[T]{val: value})
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return errors.Wrapf(ErrIndexOutOfBounds, "insert at %d with size %d", index, ll.size)
	}
	target := ll.findNodeAt(index)
	ll.insertNodeAt(target.prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) InsertAll(index int, values ...T) error {
	if index < 0 || index > ll.size {
		return errors.Wrapf(ErrIndexOutOfBounds, "insert at %d with size %d", index, ll.size)
	}
	if len(values) == 0 {
		return nil
	}
	target := ll.findNodeAt(index)
	for _, value := range values {
		ll.insertNodeAt(target.prev, &node[T]{val: value})
	}
	return nil
}

func (ll *LinkedList[T]) Get(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "get at %d with size %d", index, ll.size)
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return errors.Wrapf(ErrIndexOutOfBounds, "set at %d with size %d", index, ll.size)
	}
	ll.findNodeAt(index).val = value
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "remove at %d with size %d", index, ll.size)
	}
	return ll.removeNode(ll.findNodeAt(index)), nil
}

func (ll *LinkedList[T]) RemoveRange(start, end int) error {
	if start < 0 || end > ll.size || start > end {
		return errors.Wrapf(ErrIndexOutOfBounds, "remove range [%d, %d) with size %d", start, end, ll.size)
	}
	if start == end {
		return nil
	}

	startNode := ll.findNodeAt(start)
	endNode := ll.findNodeAt(end)

	startNode.prev.next = endNode
	prevOfRange := startNode.prev
	// clear the unlinked nodes for cursor invalidation and GC
	var zero T
	current := startNode
	for current != endNode {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	endNode.prev = prevOfRange

	ll.size -= end - start
	return nil
}

func (ll *LinkedList[T]) RemoveFirst() (T, error) {
	return ll.Remove(0)
}

func (ll *LinkedList[T]) RemoveLast() (T, error) {
	return ll.Remove(ll.size - 1)
}

func (ll *LinkedList[T]) First() (T, error) {
	return ll.Get(0)
}

func (ll *LinkedList[T]) Last() (T, error) {
	return ll.Get(ll.size - 1)
}

func (ll *LinkedList[T]) Swap(i, j int) {
	if i < 0 || i >= ll.size || j < 0 || j >= ll.size {
		return
	}
	nodeI := ll.findNodeAt(i)
	nodeJ := ll.findNodeAt(j)
	nodeI.val, nodeJ.val = nodeJ.val, nodeI.val
}

func (ll *LinkedList[T]) RemoveIf(predicate func(T) bool) int {
	removed := 0
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		next := current.next
		if predicate(current.val) {
			ll.removeNode(current)
			removed++
		}
		current = next
	}
	return removed
}

// Sort orders the list in place, stably. Small lists are sorted through a
// scratch slice for locality; larger ones by merge sort on the links.
func (ll *LinkedList[T]) Sort(compare func(a, b T) int) {
	if ll.size < 2 {
		return
	}

	if ll.size < 64 {
		vals := make([]T, 0, ll.size)
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			vals = append(vals, current.val)
		}
		slices.SortStableFunc(vals, compare)
		current := ll.headSentinel.next
		for _, v := range vals {
			current.val = v
			current = current.next
		}
		return
	}

	first := ll.headSentinel.next
	ll.tailSentinel.prev.next = nil

	sortedHead := mergeSort(first, compare)

	current := sortedHead
	prev := ll.headSentinel
	ll.headSentinel.next = current
	for current != nil {
		current.prev = prev
		prev = current
		current = current.next
	}
	prev.next = ll.tailSentinel
	ll.tailSentinel.prev = prev
}

func mergeSort[T any](head *node[T], compare func(a, b T) int) *node[T] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	mid := slow.next
	slow.next = nil

	left := mergeSort(head, compare)
	right := mergeSort(mid, compare)
	return merge(left, right, compare)
}

func merge[T any](a, b *node[T], compare func(a, b T) int) *node[T] {
	dummy := &node[T]{}
	tail := dummy

	for a != nil && b != nil {
		if compare(a.val, b.val) <= 0 {
			tail.next = a
			a = a.next
		} else {
			tail.next = b
			b = b.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return dummy.next
}

func (ll *LinkedList[T]) ContainsFunc(predicate func(T) bool) bool {
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		if predicate(current.val) {
			return true
		}
	}
	return false
}

func (ll *LinkedList[T]) IndexFunc(predicate func(T) bool) int {
	index := 0
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		if predicate(current.val) {
			return index
		}
		index++
	}
	return -1
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	var zero T
	current := ll.headSentinel.next
	for current != ll.tailSentinel {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

func (ll *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, ll.size)
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		out = append(out, current.val)
	}
	return out
}

// Clone copies the elements into a new list. Pointer elements share their
// referents.
func (ll *LinkedList[T]) Clone() *LinkedList[T] {
	clone := NewLinkedList[T]()
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		clone.Add(current.val)
	}
	return clone
}

func (ll *LinkedList[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		fmt.Fprintf(&b, "%v", current.val)
		if current.next != ll.tailSentinel {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(index, current.val) {
				return
			}
			index++
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.tailSentinel.prev; current != ll.headSentinel; current = current.prev {
			if !yield(current.val) {
				return
			}
		}
	}
}

// Refs yields the address of each node's value in order. An address stays
// valid until its node is removed.
func (ll *LinkedList[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(&current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) BackwardRefs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for current := ll.tailSentinel.prev; current != ll.headSentinel; current = current.prev {
			if !yield(&current.val) {
				return
			}
		}
	}
}
