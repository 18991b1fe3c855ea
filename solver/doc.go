// Package solver implements Todd–Coxeter coset enumeration: given a
// Coxeter group and a subgroup generator set, it allocates cosets and
// propagates deductions implied by the group's defining relations until
// every (coset, generator) cell is known, producing a complete
// coset.Cosets table.
//
// Overview:
//
//   - The deduction state for each (relation, coset) pair is a row
//     holding a gnr counter (how far the relator word has been traced)
//     and an lst cell shared, by index, with every other row discovered
//     to lie on the same relator cycle — writes through one row's lst
//     index are observed through all rows sharing it.
//   - Deductions are driven by a max-heap fact queue: newly learned
//     (coset, generator) -> coset facts are pushed and drained largest
//     index first, so coincidences at later cosets collapse before
//     earlier ones are revisited.
//   - SolveNested composes Solve with Subgroup/RecontextGens to solve an
//     inner generator set's cosets within an already-restricted outer
//     subgroup, the building block the mesh package uses to replay a
//     mesh across an ambient group's cosets.
//
// Termination: Solve always terminates when the subgroup index is
// finite. On infinite-index input it does not terminate and has no
// built-in bound — callers wanting a cap must impose one externally
// (e.g. by running Solve in a goroutine with a context-aware wrapper).
package solver
