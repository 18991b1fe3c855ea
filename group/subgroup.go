package group

import "github.com/allemangD/toddcox/internal/maskset"

// Subgroup restricts g to the generator subset s (a sorted, ascending
// subset of g.Gens()), producing a Group of rank len(s) whose matrix
// entries are copied from g and whose Gens records s — the *parent*
// indices each new generator corresponds to.
//
// Panics if s is not sorted ascending or contains an index outside
// [0, g.Rank()) — both are caller bugs.
func Subgroup(g Group, s []int) Group {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			panic(ErrGensNotSorted)
		}
	}
	for _, gen := range s {
		if gen < 0 || gen >= g.Rank() {
			panic(ErrGenOutOfRange)
		}
	}

	rank := len(s)
	m := make([][]int, rank)
	for i := range m {
		row := make([]int, rank)
		for j := range row {
			row[j] = g.At(s[i], s[j])
		}
		m[i] = row
	}

	gens := make([]int, rank)
	copy(gens, s)

	return Group{
		name: g.name + ":" + stringify(s),
		gens: gens,
		m:    m,
	}
}

// Subgroups returns every size-k subset of g.Gens() as a Subgroup of g,
// in decreasing-mask order (see internal/maskset). Count: C(g.Rank(), k).
func Subgroups(g Group, k int) []Group {
	subsets := maskset.Subsets(g.Rank(), k)
	res := make([]Group, len(subsets))
	for i, s := range subsets {
		res[i] = Subgroup(g, s)
	}
	return res
}
