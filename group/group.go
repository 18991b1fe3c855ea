package group

import (
	"fmt"
	"strings"
)

// Group is an immutable Coxeter matrix: a symmetric rank×rank integer
// matrix with 1 on the diagonal and entries >= 2 off it, together with a
// display Name and a Gens list.
//
// For a group built directly (NewGroup, Schlafli, catalog entries), Gens
// is the identity list [0, rank). For a subgroup (Subgroup), Gens instead
// stores the *parent* generator indices that the subgroup's own
// generators 0..rank-1 correspond to, sorted ascending.
type Group struct {
	name string
	gens []int
	m    [][]int
}

// NewGroup constructs a rank×rank Coxeter matrix filled with 2 off the
// diagonal and 1 on it: every pair of distinct generators commutes,
// (g_i g_j)^2 = e, and no other relation holds between them (the same
// matrix as U(rank); see U in catalog.go).
func NewGroup(rank int) Group {
	if rank < 0 {
		panic(ErrNegativeRank)
	}

	m := make([][]int, rank)
	for i := range m {
		row := make([]int, rank)
		for j := range row {
			row[j] = 2
		}
		row[i] = 1
		m[i] = row
	}

	return Group{
		name: "G",
		gens: identity(rank),
		m:    m,
	}
}

// Schlafli builds a rank-(len(mults)+1) Coxeter matrix from a simplified
// Schläfli symbol: the linear-diagram entries mults[i] = M[i, i+1]. All
// other off-diagonal entries default to 2. name is used as the group's
// display Name.
func Schlafli(mults []int, name string) Group {
	rank := len(mults) + 1
	g := NewGroup(rank)
	for i, mult := range mults {
		g.m[i][i+1] = mult
		g.m[i+1][i] = mult
	}
	g.name = name
	return g
}

// SchlafliSymbol builds a Coxeter matrix from a Schläfli symbol the same
// way Schlafli does, naming the group after the symbol itself (e.g.
// "[5 3]").
func SchlafliSymbol(mults []int) Group {
	return Schlafli(mults, stringify(mults))
}

// Rank returns the number of generators.
func (g Group) Rank() int {
	return len(g.m)
}

// Name returns the group's display name.
func (g Group) Name() string {
	return g.name
}

// Gens returns the group's generator index list. For a group built
// directly this is [0, Rank()); for a Subgroup it is the parent's
// generator indices, sorted ascending.
func (g Group) Gens() []int {
	out := make([]int, len(g.gens))
	copy(out, g.gens)
	return out
}

// At returns M[i][j], the Coxeter relation order between generators i
// and j. Panics on out-of-range indices — an out-of-range index is a
// caller bug, not a recoverable condition.
func (g Group) At(i, j int) int {
	return g.m[i][j]
}

// WithName returns a copy of g with a different display name; it does
// not mutate g, consistent with Group's immutable-after-construction
// contract.
func (g Group) WithName(name string) Group {
	g.name = name
	return g
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func stringify(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
