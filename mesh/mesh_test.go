package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allemangD/toddcox/group"
	"github.com/allemangD/toddcox/mesh"
)

func TestCombinations_MatchesMaskOrder(t *testing.T) {
	got := mesh.Combinations([]int{0, 1, 2}, 2)
	want := [][]int{{0, 1}, {0, 2}, {1, 2}}
	require.Equal(t, want, got)
}

func TestCombinations_MapsThroughGenValues(t *testing.T) {
	got := mesh.Combinations([]int{3, 5, 7}, 2)
	want := [][]int{{3, 5}, {3, 7}, {5, 7}}
	require.Equal(t, want, got)
}

func TestFlip_SwapsFirstTwo(t *testing.T) {
	p := mesh.Primitive{1, 2, 3}
	mesh.Flip(p)
	assert.Equal(t, mesh.Primitive{2, 1, 3}, p)
}

func TestFlip_NoopBelowArityTwo(t *testing.T) {
	p := mesh.Primitive{1}
	mesh.Flip(p)
	assert.Equal(t, mesh.Primitive{1}, p)
}

func TestFan_AppendsRoot(t *testing.T) {
	p := mesh.Primitive{1, 2}
	out := mesh.Fan(p, 0)
	assert.Equal(t, mesh.Primitive{1, 2, 0}, out)
	// Fan must not mutate its input.
	assert.Equal(t, mesh.Primitive{1, 2}, p)
}

func TestMerge_ConcatenatesInOrder(t *testing.T) {
	a := mesh.Mesh{{0, 1}}
	b := mesh.Mesh{{1, 2}, {2, 3}}
	got := mesh.Merge([]mesh.Mesh{a, b})
	require.Len(t, got, 3)
	assert.Equal(t, mesh.Primitive{0, 1}, got[0])
	assert.Equal(t, mesh.Primitive{2, 3}, got[2])
}

// Triangulating the trivial (rank-0) generator subset always yields a
// single point primitive.
func TestTriangulate_EmptyGensIsAPoint(t *testing.T) {
	g := group.I2(5)
	got := mesh.Triangulate(g, nil)
	require.Equal(t, mesh.Mesh{{0}}, got)
}

// Triangulating a rank-2 polygon group's full generator set produces a
// nonempty mesh of uniform arity rank+1 (one coset index coned from the
// apex at each of the two recursive facet levels).
func TestTriangulate_PolygonProducesUniformArity(t *testing.T) {
	g := group.I2(5)
	got := mesh.Triangulate(g, g.Gens())

	require.NotEmpty(t, got)
	for _, prim := range got {
		assert.Len(t, prim, g.Rank()+1)
	}
}

func TestGetParity_ZeroWhenCodimensionIsNotOne(t *testing.T) {
	g := group.I2(5)
	p := mesh.GetParity(g, []int{0, 1}, []int{})
	assert.Equal(t, 0, p)
}

func TestEachTile_ProducesOneMeshPerOuterCoset(t *testing.T) {
	g := group.I2(5)
	base := mesh.Triangulate(g, []int{0})
	tiles := mesh.EachTile(base, g, g.Gens(), []int{0})

	// [I2(5) : <g0>] = 10/2 = 5 cosets.
	require.Len(t, tiles, 5)
}

func TestTile_MergesEachTileOutput(t *testing.T) {
	g := group.I2(5)
	base := mesh.Triangulate(g, []int{0})
	tiles := mesh.EachTile(base, g, g.Gens(), []int{0})
	merged := mesh.Tile(base, g, g.Gens(), []int{0})

	total := 0
	for _, m := range tiles {
		total += len(m)
	}
	assert.Len(t, merged, total)
}

func TestHull_ExcludesListedFacets(t *testing.T) {
	g := group.I2(5)
	facets := group.Subgroups(g, 1)

	var facetGens [][]int
	for _, f := range facets {
		facetGens = append(facetGens, f.Gens())
	}

	full := mesh.Hull(g, facetGens, nil)
	excluded := mesh.Hull(g, facetGens, facetGens[:1])

	assert.Less(t, len(excluded), len(full))
}
