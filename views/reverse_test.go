package views_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/lists"
	"vista/views"
)

func TestReverse(t *testing.T) {
	v := views.FromSlice([]int{1, 2, 3}).Reverse()

	assert.Equal(t, []int{3, 2, 1}, v.Collect())

	// The reverse of a reversal is the forward walk, so the capability
	// never degrades.
	require.True(t, v.CanBackward())
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.Backward()))

	require.True(t, v.CanSize())
	assert.Equal(t, 3, v.Size())
	assert.False(t, v.IsEmpty())
}

func TestReverse_Twice(t *testing.T) {
	s := []int{1, 2, 3, 4}
	v := views.FromSlice(s).Reverse().Reverse()
	assert.Equal(t, s, v.Collect())
}

func TestReverse_OfContainer(t *testing.T) {
	l := lists.NewLinkedList[string]()
	l.Add("a", "b", "c")

	v := views.Reverse[string](l)
	assert.Equal(t, []string{"c", "b", "a"}, v.Collect())
	assert.Equal(t, 3, v.Size())
}

func TestReverse_ForwardOnlyPanics(t *testing.T) {
	// The construction itself is rejected, not the first traversal.
	assert.PanicsWithValue(t, "views: Reverse of forward-only sequence", func() {
		views.FromSeq(slices.Values([]int{1, 2})).Reverse()
	})

	assert.PanicsWithValue(t, "views: Reverse of forward-only sequence", func() {
		views.Reverse[int](views.FromSeq(slices.Values([]int{1, 2})))
	})

	assert.PanicsWithValue(t, "views: Reverse of forward-only sequence", func() {
		views.FromMap(map[string]int{"a": 1}).Reverse()
	})
}

func TestReverse_OfFiltered(t *testing.T) {
	v := views.FromSlice([]int{1, 2, 3, 4, 5}).
		Filter(func(x int) bool { return x%2 == 1 }).
		Reverse()

	assert.Equal(t, []int{5, 3, 1}, v.Collect())
}

func TestReverse_Empty(t *testing.T) {
	v := views.FromSlice([]int{}).Reverse()
	assert.True(t, v.IsEmpty())
	assert.Empty(t, v.Collect())
	assert.Equal(t, 0, v.Size())
}
