/*
Package views provides composable lazy iteration adapters over sequential
containers, built on Go 1.23+ iterators (iter.Seq).

Each adapter wraps a sequence and exposes a new sequence-like view without
materializing results:

  - **Position pairing**: [Enumerate]
  - **Pass-through and reversal**: [Iterate], [Reverse]
  - **Combination**: [Join], [Chain], [Zip]
  - **Transformation**: [Map], [Filter], [MapKeys], [MapValues]
  - **Indirection**: [Deref], [DerefHandles]
  - **Terminals**: [First], [Last], [Count], [Any], [All], [Sum], [Min], [Max]

# Capabilities

A source is anything with a Values method ([Sequence]); reverse traversal
([Bidirectional]), size queries ([Sized]) and writable access
([RefSequence]) are optional capabilities. Every factory resolves its
argument's capabilities once, at construction, and the resulting view
reports them through CanBackward and CanSize. Calling Backward or Size
where the capability is absent panics; [Reverse] goes further and does not
compile for source types without a Backward method.

	q := queues.NewArrayQueue[int](8) // sized, forward-only
	v := views.Enumerate[int](q)
	v.CanSize()     // true
	v.CanBackward() // false: reverse positions need size AND reverse traversal

# Mutability

The element type is the access mode. Views over values yield copies and can
never write back; views over pointers, entered through [Refs] or
[SliceRefs], yield writable element handles, and every adapter stacked on
top keeps the pointer element type, so write access survives the whole
pipeline. [Deref] collapses pointers to values and is the only crossing
back; there is no way to regain write access downstream of it.

	nums := []int{0, 1, 2, 3, 4}
	for p := range views.SliceRefs(nums).Filter(func(p *int) bool { return *p%2 == 1 }).Values() {
		*p *= 10 // nums is now [0, 10, 2, 30, 4]
	}

# Pipelines

Every view carries chainable Filter, Map, Reverse and Enumerate methods.
Each call consumes its receiver; using a view after chaining off it is a
contract violation, and a second chaining call panics. Traversals
themselves are restartable as long as the underlying source is.
*/
package views
