// Package toddcox enumerates the cosets of a finitely presented Coxeter
// group with respect to a designated subgroup, and builds simplicial
// meshes that tile the resulting regular polytopes and honeycombs.
//
// What it does:
//
//   - group    — Coxeter matrices, Schläfli-symbol construction, subgroup
//     restriction and enumeration, and the standard named catalog
//     (A, B, D, E, F4, G2, H, I2, T, U).
//   - coset    — the dense coset-action table (Cosets) and its derived
//     spanning tree (Path), used to replay a per-coset computation with
//     a single pass over the table.
//   - solver   — the Todd–Coxeter deduction engine: given a group and a
//     subgroup generator set, produces a complete Cosets table.
//   - mesh     — triangulates a subgroup's maximal-rank orbit into an
//     N-simplex mesh, lifts it across every coset of the ambient group,
//     and merges the per-coset tiles into the full hull.
//
// Why:
//
//   - Regular polytopes and their higher-dimensional honeycomb analogues
//     are naturally described by Coxeter groups; their combinatorics
//     (face lattices, vertex figures, adjacency) fall out of the coset
//     table for free once it is enumerated.
//   - The mesh builder turns that combinatorial description into an
//     actual triangulated geometry, reusable by any renderer.
//
// Non-goals: no persistent storage, no networking, no concurrency exposed
// to callers — the core is synchronous and single-threaded throughout.
// There is no symbolic word-problem solver beyond what coset enumeration
// itself supplies.
package toddcox
