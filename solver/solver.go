package solver

import (
	"github.com/allemangD/toddcox/coset"
	"github.com/allemangD/toddcox/group"
)

// Solve enumerates the cosets of the subgroup generated by subGens
// within g, returning a complete coset.Cosets table. subGens need not be
// sorted by the caller in any particular order for correctness, but
// every other entry point in this module passes it pre-sorted ascending.
func Solve(g group.Group, subGens []int) *coset.Cosets {
	rank := g.Rank()

	cosets := coset.NewCosets(rank)
	cosets.AddRow() // coset 0

	if rank == 0 {
		return cosets
	}

	for _, gen := range subGens {
		if gen < rank {
			cosets.Put(0, gen, 0)
		}
	}

	rels := g.Relations()
	deps := dependencyMap(rank, rels)
	arena := newLstArena()

	rows := newRowTable(len(rels))
	rows.addRow()
	initRow(cosets, rows, rels, arena, 0)

	for c := 0; c < cosets.Order(); c++ {
		for gen := 0; gen < rank; gen++ {
			if cosets.Get(c, gen) >= 0 {
				continue
			}

			target := cosets.Order()
			cosets.AddRow()
			rows.addRow()

			facts := newFactQueue()
			facts.push(c*rank + gen)

			for facts.Len() > 0 {
				fact := facts.pop()
				c2, g2 := fact/rank, fact%rank

				if cosets.Get(c2, g2) != -1 {
					continue
				}
				cosets.Put(c2, g2, target)

				learn(cosets, rows, rels, deps, arena, facts, target, c2, g2, rank)
			}

			initRow(cosets, rows, rels, arena, target)
		}
	}

	return cosets
}

// SolveGroup enumerates the cosets of the trivial subgroup (the regular
// action of g on itself), equivalent to Solve(g, nil).
func SolveGroup(g group.Group) *coset.Cosets {
	return Solve(g, nil)
}

// SolveNested enumerates the cosets of the subgroup generated by inner
// within the subgroup generated by outer within context — i.e.
// Solve(Subgroup(context, outer), group.RecontextGens(context.Rank(), outer, inner)).
func SolveNested(context group.Group, outer, inner []int) *coset.Cosets {
	properInner := group.RecontextGens(context.Rank(), outer, inner)
	sub := group.Subgroup(context, outer)
	return Solve(sub, properInner)
}

// learn processes the deductions triggered by having just set
// T[c2,g2] = target (and, mutually, T[target,g2] = c2), for every
// relation that mentions g2, pushing any newly forced facts onto facts.
func learn(
	cosets *coset.Cosets,
	rows *rowTable,
	rels []group.Relation,
	deps [][]int,
	arena *lstArena,
	facts *factQueue,
	target, c2, g2, rank int,
) {
	for _, irel := range deps[g2] {
		rel := rels[irel]
		tRow := rows.get(target, irel)

		if target == c2 {
			// Coincidence: the new coset collapsed onto itself under g2.
			// This relation contributes no information at this coset;
			// mark it trivially satisfied if it hasn't been touched yet.
			if tRow.lst == -1 {
				tRow.gnr = -1
				rows.set(target, irel, tRow)
			}
			continue
		}

		if tRow.lst != -1 {
			continue // already determined this burst
		}

		cRow := rows.get(c2, irel)
		tRow.lst = cRow.lst
		tRow.gnr = cRow.gnr + 1
		if cRow.gnr < 0 {
			tRow.gnr -= 2 // walking from the opposite end of the relator
		}
		rows.set(target, irel, tRow)

		other := rel.I
		if g2 == rel.I {
			other = rel.J
		}

		switch {
		case tRow.gnr == rel.Mult:
			// Forward learn: a full relator word closed; the coset held
			// at the shared lst cell must reach target via other.
			lst := arena.get(tRow.lst)
			facts.push(lst*rank + other)
		case tRow.gnr == -rel.Mult:
			// Stationary learn: symmetric case, walking from target.
			facts.push(target*rank + other)
		case tRow.gnr == rel.Mult-1:
			// Determined family: one step short of closure; record target
			// so the next step along this relator resolves immediately.
			arena.set(tRow.lst, target)
		}
	}
}

// initRow initializes relation row state for a coset right after it's
// allocated (or, for coset 0, right after the subgroup-fixing cells are
// written): any relation whose row is still uninitialized gets a fresh
// lst cell (gnr = 0) unless one of its two generators already fixes the
// coset, in which case it attaches the shared null sentinel (gnr = -1).
func initRow(cosets *coset.Cosets, rows *rowTable, rels []group.Relation, arena *lstArena, target int) {
	for irel, rel := range rels {
		row := rows.get(target, irel)
		if row.lst != -1 {
			continue
		}

		if cosets.Get(target, rel.I) != target && cosets.Get(target, rel.J) != target {
			row.lst = arena.alloc()
			row.gnr = 0
		} else {
			row.lst = nullIndex
			row.gnr = -1
		}
		rows.set(target, irel, row)
	}
}

func dependencyMap(rank int, rels []group.Relation) [][]int {
	deps := make([][]int, rank)
	for irel, rel := range rels {
		deps[rel.I] = append(deps[rel.I], irel)
		deps[rel.J] = append(deps[rel.J], irel)
	}
	return deps
}
