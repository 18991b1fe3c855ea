package mesh

import "github.com/allemangD/toddcox/group"

// Hull assembles a boundary complex for g: for every facet generator
// subset in allSgGens not present in exclude, triangulates that facet's
// fundamental domain and tiles it across all of g's cosets, merging
// every tile's primitives into one mesh.
//
// exclude is compared against allSgGens entries by elementwise equality
// of the generator-subset slices; callers must pass exclude entries in
// the same canonical ascending-sorted order Combinations produces.
func Hull(g group.Group, allSgGens [][]int, exclude [][]int) Mesh {
	var parts Mesh

	gGens := identityGens(g.Rank())
	for _, sgGens := range allSgGens {
		if containsSubset(exclude, sgGens) {
			continue
		}

		base := Triangulate(g, sgGens)
		tiles := EachTile(base, g, gGens, sgGens)
		for _, t := range tiles {
			parts = append(parts, t...)
		}
	}

	return parts
}

func containsSubset(set [][]int, target []int) bool {
	for _, candidate := range set {
		if intSliceEqual(candidate, target) {
			return true
		}
	}
	return false
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
