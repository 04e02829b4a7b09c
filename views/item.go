package views

// Item pairs an element with its position during enumeration. It is rebuilt
// on every step of the traversal; it holds a copy of whatever the underlying
// sequence yielded, so for a pointer pipeline the Val field stays a writable
// handle.
type Item[E any] struct {
	Pos int
	Val E
}

// Pair carries one element from each side of a Zip, rebuilt on every step.
// The fields keep whatever access mode each side had: zipping a pointer
// pipeline with a value pipeline yields pairs with one writable side.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}
