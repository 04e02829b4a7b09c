package views

// Terminal operations. Each consumes elements from a forward traversal
// unless a cheaper capability is available.

// First returns the first element of src, or false for an empty sequence.
func First[E any](src Sequence[E]) (E, bool) {
	for e := range src.Values() {
		return e, true
	}
	var zero E
	return zero, false
}

// Last returns the final element of src. It reads one element of the
// reverse traversal when src has the capability and scans forward
// otherwise.
func Last[E any](src Sequence[E]) (E, bool) {
	if b := backwardOf(src); b != nil {
		for e := range b.Backward() {
			return e, true
		}
		var zero E
		return zero, false
	}
	var last E
	found := false
	for e := range src.Values() {
		last = e
		found = true
	}
	return last, found
}

// Count returns the element count, using Size when available and a full
// scan otherwise. On a Filter view with a sized source this delegates to
// the view's scanning Size.
func Count[E any](src Sequence[E]) int {
	if s := sizedOf(src); s != nil {
		return s.Size()
	}
	n := 0
	for range src.Values() {
		n++
	}
	return n
}

// Any reports whether some element satisfies the predicate.
func Any[E any](src Sequence[E], pred func(E) bool) bool {
	for e := range src.Values() {
		if pred(e) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate.
func All[E any](src Sequence[E], pred func(E) bool) bool {
	for e := range src.Values() {
		if !pred(e) {
			return false
		}
	}
	return true
}

type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sum adds up all elements.
func Sum[E Number](src Sequence[E]) E {
	var total E
	for e := range src.Values() {
		total += e
	}
	return total
}

// Min returns the smallest element, or false for an empty sequence.
func Min[E Number](src Sequence[E]) (E, bool) {
	var best E
	first := true
	for e := range src.Values() {
		if first || e < best {
			best = e
			first = false
		}
	}
	if first {
		var zero E
		return zero, false
	}
	return best, true
}

// Max returns the largest element, or false for an empty sequence.
func Max[E Number](src Sequence[E]) (E, bool) {
	var best E
	first := true
	for e := range src.Values() {
		if first || e > best {
			best = e
			first = false
		}
	}
	if first {
		var zero E
		return zero, false
	}
	return best, true
}
