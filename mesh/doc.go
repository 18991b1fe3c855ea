// Package mesh builds simplicial meshes over a solved coset table: a
// Primitive is a tuple of coset indices (a single simplex), and a Mesh
// is an ordered list of Primitives.
//
// Overview:
//
//   - Triangulate fills the fundamental domain of a subgroup with
//     primitives, recursing over facet subgroups one codimension at a
//     time.
//   - EachTile/Tile replicate a base mesh across every coset of an
//     outer group, via coset.Path.Walk, to produce the full
//     tessellation.
//   - Recontext reindexes a mesh built in a sub-subgroup's coset space
//     into a containing subgroup's coset space, flipping orientation
//     where GetParity calls for it.
//   - Hull assembles a boundary complex from a family of facet
//     subgroups, excluding any the caller names explicitly.
package mesh
