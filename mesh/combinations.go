package mesh

import "github.com/allemangD/toddcox/internal/maskset"

// Combinations returns every size-k subset of gens, as ascending []int
// slices of actual generator values (not positions), in the same
// decreasing-mask order as group.Subgroups. Both consumers share
// internal/maskset's enumeration so the two never drift apart.
func Combinations(gens []int, k int) [][]int {
	idxSets := maskset.Subsets(len(gens), k)

	out := make([][]int, len(idxSets))
	for i, idxs := range idxSets {
		row := make([]int, len(idxs))
		for j, idx := range idxs {
			row[j] = gens[idx]
		}
		out[i] = row
	}
	return out
}

// identityGens returns [0, n), the generator list a context group's own
// solver calls expect — always the identity regardless of whether the
// group value itself is a top-level group or a Subgroup (whose Gens
// reports parent indices instead).
func identityGens(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
