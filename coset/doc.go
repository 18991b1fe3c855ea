// Package coset implements the coset-action table produced by the
// Todd–Coxeter solver, and the spanning Path derived from it.
//
// Cosets is a dense row-major mapping (coset, generator) -> coset, with
// -1 meaning "not yet known". Once a cell is set it is never changed
// again. Path records, for every coset but the root, the (source,
// generator) pair that first produced it — a spanning tree over the
// cosets rooted at 0, used to replay any per-coset computation with
// Path.Walk in a single forward pass.
//
// Cosets carries no mutex: a table is built monotonically by a single
// solver run and is never mutated concurrently afterward, so locking
// would only be dead weight on a value nothing ever shares across
// goroutines.
package coset
