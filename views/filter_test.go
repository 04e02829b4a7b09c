package views_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vista/views"
)

func odd(x int) bool { return x%2 != 0 }

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"Runs of rejects", []int{0, 0, 0, 1, 2, 2, 2, 3, 4, 4, 4}, []int{1, 3}},
		{"Reject then accept", []int{0, 1}, []int{1}},
		{"All accepted", []int{1, 3, 5}, []int{1, 3, 5}},
		{"All rejected", []int{0, 2, 4}, nil},
		{"Empty", []int{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := views.FromSlice(tt.input).Filter(odd)
			assert.Equal(t, tt.want, slices.Collect(v.Values()))
		})
	}
}

func TestFilter_Backward(t *testing.T) {
	v := views.FromSlice([]int{0, 0, 0, 1, 2, 2, 2, 3, 4, 4, 4}).Filter(odd)

	require.True(t, v.CanBackward())
	assert.Equal(t, []int{3, 1}, slices.Collect(v.Backward()))
}

func TestFilter_SizeRescans(t *testing.T) {
	s := []int{0, 1, 2, 3}
	v := views.FromSlice(s).Filter(odd)

	require.True(t, v.CanSize())
	assert.Equal(t, 2, v.Size())

	// The count is never cached: a mutation in the source shows up in
	// the next call.
	s[0] = 9
	assert.Equal(t, 3, v.Size())
	s[0] = 0
	assert.Equal(t, 2, v.Size())
}

func TestFilter_IsEmptyShortCircuits(t *testing.T) {
	calls := 0
	v := views.FromSlice([]int{1, 2, 3}).Filter(func(x int) bool {
		calls++
		return odd(x)
	})

	assert.False(t, v.IsEmpty())
	// The first element is accepted, so the scan stops there.
	assert.Equal(t, 1, calls)

	assert.True(t, views.FromSlice([]int{0, 2}).Filter(odd).IsEmpty())
	assert.True(t, views.FromSlice([]int{}).Filter(odd).IsEmpty())
}

func TestFilter_ForwardOnlySource(t *testing.T) {
	v := views.FromSeq(slices.Values([]int{1, 2, 3})).Filter(odd)

	assert.Equal(t, []int{1, 3}, v.Collect())
	assert.False(t, v.CanBackward())
	assert.False(t, v.CanSize())
	assert.PanicsWithValue(t, "views: Backward on forward-only sequence", func() {
		v.Backward()
	})
	assert.PanicsWithValue(t, "views: Size on unsized sequence", func() {
		v.Size()
	})
}

func TestFilter_Composed(t *testing.T) {
	v := views.FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}).
		Filter(odd).
		Filter(func(x int) bool { return x > 3 })

	assert.Equal(t, []int{5, 7, 9}, v.Collect())
	assert.Equal(t, 3, v.Size())
}

func TestFilter_WritableElements(t *testing.T) {
	s := []int{1, 2, 3, 4}
	v := views.SliceRefs(s).Filter(func(p *int) bool { return *p%2 == 0 })

	for p := range v.Values() {
		*p *= 100
	}
	assert.Equal(t, []int{1, 200, 3, 400}, s)
}
