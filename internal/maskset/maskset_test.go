package maskset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allemangD/toddcox/internal/maskset"
)

func TestSubsets_Count(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{5, 0, 1},
		{5, 5, 1},
		{5, 2, 10},
		{8, 3, 56},
		{0, 0, 1},
	}
	for _, c := range cases {
		got := maskset.Subsets(c.n, c.k)
		assert.Lenf(t, got, c.want, "Subsets(%d,%d)", c.n, c.k)
	}
}

func TestSubsets_Distinct_Sorted_Valid(t *testing.T) {
	subs := maskset.Subsets(5, 3)
	seen := map[string]bool{}
	for _, s := range subs {
		require.Len(t, s, 3)
		for i := 1; i < len(s); i++ {
			require.Less(t, s[i-1], s[i], "subset must be ascending: %v", s)
		}
		for _, v := range s {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 5)
		}
		key := ""
		for _, v := range s {
			key += string(rune('a' + v))
		}
		require.False(t, seen[key], "duplicate subset %v", s)
		seen[key] = true
	}
}

func TestSubsets_DecreasingMaskOrder(t *testing.T) {
	// For n=3, k=2: decreasing-mask order is {0,1}, {0,2}, {1,2}.
	got := maskset.Subsets(3, 2)
	want := [][]int{{0, 1}, {0, 2}, {1, 2}}
	require.Equal(t, want, got)
}

func TestSubsets_BaseCases(t *testing.T) {
	require.Equal(t, [][]int{{}}, maskset.Subsets(0, 0))
	require.Equal(t, [][]int{{0, 1, 2}}, maskset.Subsets(3, 3))
}

func TestSubsets_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { maskset.Subsets(-1, 0) })
	assert.Panics(t, func() { maskset.Subsets(3, 5) })
}
