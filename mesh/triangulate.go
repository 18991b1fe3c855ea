package mesh

import "github.com/allemangD/toddcox/group"

// Triangulate fills the fundamental domain of the subgroup generated by
// gGens within context with simplices, by recursively triangulating
// each codimension-1 facet subgroup and coning the new primitives it
// produces back to the apex (coset 0).
//
// Base case: the empty generator set triangulates to a single point,
// Primitive{0}.
func Triangulate(context group.Group, gGens []int) Mesh {
	if len(gGens) == 0 {
		return Mesh{Primitive{0}}
	}

	combos := Combinations(gGens, len(gGens)-1)

	meshes := make([]Mesh, 0, len(combos))
	for _, sgGens := range combos {
		base := Triangulate(context, sgGens)
		raised := Tile(base, context, gGens, sgGens)

		// the facet's own primitives already triangulate its share of the
		// domain; only the newly-replicated ones need coning to the apex.
		raised = raised[len(base):]
		fanned := FanMesh(raised, 0)
		meshes = append(meshes, fanned)
	}

	return Merge(meshes)
}
