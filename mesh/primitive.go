package mesh

import (
	"github.com/allemangD/toddcox/coset"
)

// Primitive is an ordered tuple of coset indices — a single simplex.
// Orientation is observable: swapping the first two entries reverses it.
type Primitive []int

// Mesh is an ordered sequence of Primitives, all of the same arity.
type Mesh []Primitive

// Flip reverses the orientation of prim in place by swapping its first
// two entries. No-op for primitives of arity less than 2.
func Flip(prim Primitive) {
	if len(prim) > 1 {
		prim[0], prim[1] = prim[1], prim[0]
	}
}

// FlipMesh reverses the orientation of every primitive in mesh in place.
func FlipMesh(mesh Mesh) {
	for _, prim := range mesh {
		Flip(prim)
	}
}

// Fan appends root to prim, returning a new, larger primitive.
func Fan(prim Primitive, root int) Primitive {
	out := make(Primitive, len(prim)+1)
	copy(out, prim)
	out[len(prim)] = root
	return out
}

// FanMesh appends root to every primitive in mesh, returning a new mesh.
func FanMesh(mesh Mesh, root int) Mesh {
	out := make(Mesh, len(mesh))
	for i, prim := range mesh {
		out[i] = Fan(prim, root)
	}
	return out
}

// Apply maps every coset index in prim through table's gen column, then
// flips the primitive's orientation, in place — mirrors applying a
// single generator to a simplex living in table's coset space.
func Apply(table *coset.Cosets, gen int, prim Primitive) {
	for i, ind := range prim {
		prim[i] = table.Get(ind, gen)
	}
	Flip(prim)
}

// ApplyMesh applies Apply to every primitive of mesh in place.
func ApplyMesh(table *coset.Cosets, gen int, mesh Mesh) {
	for _, prim := range mesh {
		Apply(table, gen, prim)
	}
}

// Merge concatenates several meshes of the same arity into one.
func Merge(meshes []Mesh) Mesh {
	size := 0
	for _, m := range meshes {
		size += len(m)
	}

	res := make(Mesh, 0, size)
	for _, m := range meshes {
		res = append(res, m...)
	}
	return res
}

// clone deep-copies a mesh so that replaying Apply across many branches
// of a walk never aliases another branch's primitives.
func clone(mesh Mesh) Mesh {
	out := make(Mesh, len(mesh))
	for i, prim := range mesh {
		p := make(Primitive, len(prim))
		copy(p, prim)
		out[i] = p
	}
	return out
}
