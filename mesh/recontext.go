package mesh

import (
	"github.com/allemangD/toddcox/coset"
	"github.com/allemangD/toddcox/group"
	"github.com/allemangD/toddcox/solver"
)

// Recontext reindexes prims in place from the coset space of the
// subgroup generated by sgGens within context to the coset space of the
// subgroup generated by gGens within context (sgGens must be a subset
// of gGens). If the inclusion is orientation-reversing (see GetParity),
// every primitive is also flipped.
func Recontext(prims Mesh, context group.Group, gGens, sgGens []int) {
	properSgGens := group.RecontextGens(context.Rank(), gGens, sgGens)

	table := solver.SolveNested(context, gGens, nil)
	path := solver.SolveNested(context, sgGens, nil).Path()

	m := coset.WalkGens(path, 0, properSgGens, func(acc, genValue int) int {
		return table.Get(acc, genValue)
	})

	for _, prim := range prims {
		for i, ind := range prim {
			prim[i] = m[ind]
		}
	}

	if GetParity(context, gGens, sgGens) == 1 {
		FlipMesh(prims)
	}
}

// GetParity reports whether including the subgroup generated by sgGens
// into the subgroup generated by gGens (within context) reverses
// orientation. Returns 0 whenever len(gGens) != len(sgGens)+1 — parity
// is only meaningful for a single-generator codimension step. Otherwise
// it's the parity of the first position at which sgGens' positions
// within gGens (see group.RecontextGens) diverge from the identity
// mapping, or the full length's parity if they never diverge.
func GetParity(context group.Group, gGens, sgGens []int) int {
	if len(gGens) != len(sgGens)+1 {
		return 0
	}

	properSgGens := group.RecontextGens(context.Rank(), gGens, sgGens)

	i := 0
	for ; i < len(sgGens); i++ {
		if properSgGens[i] != i {
			break
		}
	}

	return i & 1
}
