package group

import "sort"

// RecontextGens maps generator names in a parent generator subset to
// generator names in a child subset of it: sParent and sChild are both
// sorted ascending subsets of [0, rank), with sChild a subset of sParent
// (as sets). The result is the sorted list of positions sChild's
// elements occupy within sParent — i.e. the index each child generator
// would have if renumbered relative to its parent's own generator list.
//
// Panics if an element of sChild is not present in sParent, or if any
// element of either falls outside [0, rank) — both are caller bugs.
func RecontextGens(rank int, sParent, sChild []int) []int {
	pos := make(map[int]int, len(sParent))
	for i, g := range sParent {
		if g < 0 || g >= rank {
			panic(ErrGenOutOfRange)
		}
		pos[g] = i
	}

	out := make([]int, 0, len(sChild))
	for _, g := range sChild {
		if g < 0 || g >= rank {
			panic(ErrGenOutOfRange)
		}
		p, ok := pos[g]
		if !ok {
			panic(ErrGenOutOfRange)
		}
		out = append(out, p)
	}

	sort.Ints(out)
	return out
}
