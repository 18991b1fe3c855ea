package mesh

import (
	"github.com/allemangD/toddcox/coset"
	"github.com/allemangD/toddcox/group"
	"github.com/allemangD/toddcox/solver"
)

// EachTile recontexts base into gGens' coset space, then replicates it
// across every coset of the subgroup generated by sgGens within that
// space, returning one copy of base per coset (in spanning-tree
// discovery order) with every generator of the walk applied along the
// way. sgGens must be a subset of gGens.
func EachTile(base Mesh, context group.Group, gGens, sgGens []int) []Mesh {
	Recontext(base, context, gGens, sgGens)

	table := solver.SolveNested(context, gGens, nil)
	path := solver.SolveNested(context, gGens, sgGens).Path()
	gens := identityGens(len(gGens))

	return coset.WalkGens(path, base, gens, func(acc Mesh, genValue int) Mesh {
		c := clone(acc)
		ApplyMesh(table, genValue, c)
		return c
	})
}

// Tile is EachTile followed by Merge: the full replicated mesh as one
// flat sequence of primitives, rather than one Mesh per coset.
func Tile(base Mesh, context group.Group, gGens, sgGens []int) Mesh {
	return Merge(EachTile(base, context, gGens, sgGens))
}
