package views_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/lists"
	"vista/queues"
	"vista/views"
)

func TestIterate_Slice(t *testing.T) {
	v := views.FromSlice([]int{1, 2, 3})

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.Values()))
	assert.Equal(t, []int{1, 2, 3}, v.Collect())

	require.True(t, v.CanBackward())
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(v.Backward()))

	require.True(t, v.CanSize())
	assert.Equal(t, 3, v.Size())
	assert.False(t, v.IsEmpty())

	empty := views.FromSlice([]int{})
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Size())
	assert.Empty(t, empty.Collect())
}

func TestOf_CopiesArguments(t *testing.T) {
	s := []int{1, 2, 3}
	v := views.Of(s...)

	s[0] = 99
	assert.Equal(t, []int{1, 2, 3}, v.Collect())
}

func TestFromSlice_Borrows(t *testing.T) {
	s := []int{1, 2, 3}
	v := views.FromSlice(s)

	s[0] = 99
	assert.Equal(t, []int{99, 2, 3}, v.Collect())
}

func TestFromSeq_ForwardOnlyUnsized(t *testing.T) {
	v := views.FromSeq(slices.Values([]int{1, 2, 3}))

	assert.Equal(t, []int{1, 2, 3}, v.Collect())
	// A view over a restartable closure restarts.
	assert.Equal(t, []int{1, 2, 3}, v.Collect())

	assert.False(t, v.CanBackward())
	assert.False(t, v.CanSize())
	assert.PanicsWithValue(t, "views: Backward on forward-only sequence", func() {
		v.Backward()
	})
	assert.PanicsWithValue(t, "views: Size on unsized sequence", func() {
		v.Size()
	})

	// IsEmpty probes the first element.
	assert.False(t, v.IsEmpty())
	assert.True(t, views.FromSeq(slices.Values([]int{})).IsEmpty())
}

func TestFromMap(t *testing.T) {
	v := views.FromMap(map[string]int{"a": 1})

	require.True(t, v.CanSize())
	assert.Equal(t, 1, v.Size())
	assert.False(t, v.CanBackward())

	pairs := v.Collect()
	require.Len(t, pairs, 1)
	assert.Equal(t, "a", pairs[0].V1)
	assert.Equal(t, 1, pairs[0].V2)

	m := map[string]int{"a": 1, "b": 2, "c": 3}
	got := views.FromMap(m).Collect()
	assert.ElementsMatch(t, []views.Pair[string, int]{
		{V1: "a", V2: 1}, {V1: "b", V2: 2}, {V1: "c", V2: 3},
	}, got)

	assert.True(t, views.FromMap(map[string]int{}).IsEmpty())
}

func TestRange(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{"Ascending", 0, 5, 1, []int{0, 1, 2, 3, 4}},
		{"Descending", 5, 0, -1, []int{5, 4, 3, 2, 1}},
		{"Stride", 0, 10, 3, []int{0, 3, 6, 9}},
		{"Zero step", 0, 5, 0, nil},
		{"Wrong direction", 0, 5, -1, nil},
		{"Empty interval", 3, 3, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := views.Range(tt.start, tt.end, tt.step)
			assert.Equal(t, tt.want, slices.Collect(v.Values()))
			assert.False(t, v.CanBackward())
			assert.False(t, v.CanSize())
		})
	}
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, []string{"x", "x", "x"}, views.Repeat("x", 3).Collect())
	assert.Empty(t, views.Repeat("x", 0).Collect())
	assert.Empty(t, views.Repeat("x", -1).Collect())
	assert.True(t, views.Repeat("x", 0).IsEmpty())
}

func TestIterate_Containers(t *testing.T) {
	t.Run("ArrayList is bidirectional and sized", func(t *testing.T) {
		l := lists.NewArrayList[int](4)
		l.Add(1, 2, 3)
		v := views.Iterate[int](l)

		assert.True(t, v.CanBackward())
		assert.True(t, v.CanSize())
		assert.Equal(t, []int{1, 2, 3}, v.Collect())
		assert.Equal(t, []int{3, 2, 1}, slices.Collect(v.Backward()))
		assert.Equal(t, 3, v.Size())
	})

	t.Run("LinkedList is bidirectional and sized", func(t *testing.T) {
		l := lists.NewLinkedList[string]()
		l.Add("a", "b")
		v := views.Iterate[string](l)

		assert.True(t, v.CanBackward())
		assert.True(t, v.CanSize())
		assert.Equal(t, []string{"b", "a"}, slices.Collect(v.Backward()))
	})

	t.Run("SinglyLinkedList is forward-only but sized", func(t *testing.T) {
		l := lists.NewSinglyLinkedList[int]()
		l.Add(1, 2, 3)
		v := views.Iterate[int](l)

		assert.False(t, v.CanBackward())
		assert.True(t, v.CanSize())
		assert.Equal(t, 3, v.Size())
		assert.Equal(t, []int{1, 2, 3}, v.Collect())
		assert.PanicsWithValue(t, "views: Backward on forward-only sequence", func() {
			v.Backward()
		})
	})

	t.Run("ArrayQueue is forward-only but sized", func(t *testing.T) {
		q := queues.NewArrayQueue[int](4)
		q.EnqueueAll(1, 2, 3)
		v := views.Iterate[int](q)

		assert.False(t, v.CanBackward())
		assert.True(t, v.CanSize())
		assert.Equal(t, 3, v.Size())
		assert.Equal(t, []int{1, 2, 3}, v.Collect())
		// Viewing does not drain.
		assert.Equal(t, 3, q.Size())
	})
}

func TestRefs_Containers(t *testing.T) {
	t.Run("LinkedList refs are bidirectional", func(t *testing.T) {
		l := lists.NewLinkedList[int]()
		l.Add(1, 2, 3)
		v := views.Refs[int](l)

		require.True(t, v.CanBackward())
		require.True(t, v.CanSize())
		assert.Equal(t, 3, v.Size())

		for p := range v.Values() {
			*p *= 2
		}
		assert.Equal(t, []int{2, 4, 6}, l.ToSlice())

		var rev []int
		for p := range v.Backward() {
			rev = append(rev, *p)
		}
		assert.Equal(t, []int{6, 4, 2}, rev)
	})

	t.Run("SinglyLinkedList refs are forward-only", func(t *testing.T) {
		l := lists.NewSinglyLinkedList[int]()
		l.Add(1, 2, 3)
		v := views.Refs[int](l)

		assert.False(t, v.CanBackward())
		assert.True(t, v.CanSize())
		assert.PanicsWithValue(t, "views: Backward on forward-only sequence", func() {
			v.Backward()
		})

		for p := range v.Values() {
			*p++
		}
		assert.Equal(t, []int{2, 3, 4}, l.ToSlice())
	})

	t.Run("ArrayQueue refs mutate in place", func(t *testing.T) {
		q := queues.NewArrayQueue[int](4)
		q.EnqueueAll(1, 2, 3)
		v := views.Refs[int](q)

		for p := range v.Values() {
			*p *= 10
		}
		assert.Equal(t, []int{10, 20, 30}, q.ToSlice())
	})
}

func TestSliceRefs(t *testing.T) {
	s := []int{1, 2, 3}
	v := views.SliceRefs(s)

	require.True(t, v.CanBackward())
	require.True(t, v.CanSize())
	assert.Equal(t, 3, v.Size())

	for p := range v.Values() {
		*p += 10
	}
	assert.Equal(t, []int{11, 12, 13}, s)

	// Backward yields the same handles from the other end.
	for p := range v.Backward() {
		*p--
	}
	assert.Equal(t, []int{10, 11, 12}, s)
}
