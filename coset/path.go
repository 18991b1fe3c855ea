package coset

// pathEntry records the (source, generator) pair that first produced a
// coset; set is false for coset 0 (the root) and for any as-yet-unwritten
// slot.
type pathEntry struct {
	source int
	gen    int
	set    bool
}

// Path is the spanning tree over a Cosets table's rows, rooted at coset
// 0: for every coset c > 0, the (source, gen) pair such that applying
// gen from source first produced c. Because source[i] < i for every
// i > 0, a single forward pass over the table suffices to replay any
// per-coset computation — that is exactly what Walk does.
type Path struct {
	entries []pathEntry
}

func (p *Path) addRow() {
	p.entries = append(p.entries, pathEntry{source: -1, gen: -1})
}

func (p *Path) isSet(coset int) bool {
	return p.entries[coset].set
}

func (p *Path) set(coset, source, gen int) {
	p.entries[coset] = pathEntry{source: source, gen: gen, set: true}
}

// Order returns the number of cosets spanned by this path.
func (p Path) Order() int {
	return len(p.entries)
}

// Walk produces a slice of length Order(): res[0] = start, and for
// i >= 1, res[i] = op(res[source], gen) where (source, gen) is the i-th
// spanning-tree entry. op receives the raw generator index. T is
// whatever value the caller replays across the coset tree — a single
// coset index when reindexing, or a whole Mesh when lifting simplices
// across every coset (see mesh.EachTile).
//
// Well-defined because source[i] < i for every i >= 1: the spanning tree
// only ever points to strictly-earlier cosets, so res[source] is always
// already populated when res[i] is computed.
func Walk[T any](p Path, start T, op func(acc T, gen int) T) []T {
	res := make([]T, p.Order())
	if len(res) == 0 {
		return res
	}
	res[0] = start

	for i := 1; i < len(res); i++ {
		e := p.entries[i]
		res[i] = op(res[e.source], e.gen)
	}

	return res
}

// WalkGens is sugar over Walk for callers holding a generator-value
// array instead of wanting the raw generator index: it looks up
// gens[gen] before invoking op.
func WalkGens[T any](p Path, start T, gens []int, op func(acc T, genValue int) T) []T {
	return Walk(p, start, func(acc T, gen int) T {
		return op(acc, gens[gen])
	})
}
