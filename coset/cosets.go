package coset

// Cosets is the dense (coset, generator) -> coset table for a single
// solved subgroup. Rows are appended by AddRow; cells transition from
// unknown (-1) to a defined non-negative coset index exactly once.
type Cosets struct {
	rank  int
	order int
	data  []int
	path  Path
}

// NewCosets constructs an empty table over rank generators, with zero
// rows. Call AddRow to allocate the root coset before solving.
func NewCosets(rank int) *Cosets {
	return &Cosets{
		rank: rank,
		path: Path{},
	}
}

// Rank returns the number of generators.
func (c *Cosets) Rank() int {
	return c.rank
}

// Order returns the number of allocated cosets.
func (c *Cosets) Order() int {
	return c.order
}

// AddRow appends a new coset: rank fresh unknown (-1) cells, and a
// placeholder spanning-tree entry.
func (c *Cosets) AddRow() {
	for i := 0; i < c.rank; i++ {
		c.data = append(c.data, -1)
	}
	c.path.addRow()
	c.order++
}

// Put records that applying generator gen to coset takes it to target,
// and (by the mutual-assignment invariant: generators are involutions)
// that applying gen to target takes it back to coset. If target's
// spanning-tree entry is not yet set and target != coset, this also
// records (coset, gen) as the edge that first reached target.
func (c *Cosets) Put(coset, gen, target int) {
	c.data[coset*c.rank+gen] = target
	c.data[target*c.rank+gen] = coset

	if target != coset && !c.path.isSet(target) {
		c.path.set(target, coset, gen)
	}
}

// Get returns the stored value of (coset, gen), or -1 if unknown.
func (c *Cosets) Get(coset, gen int) int {
	return c.data[coset*c.rank+gen]
}

// Path returns the spanning path derived from this table's Put calls.
func (c *Cosets) Path() Path {
	return c.path
}
