package solver

// blockSize is the allocation granularity for "lst" cells: large enough
// to amortize the append cost over a full solve without over-allocating
// for small groups.
const blockSize = 4096

// lstArena bulk-allocates the shared "last seen" integer cells relation
// row states point into. Index 0 is reserved as the null sentinel: it is
// never reassigned by Alloc and always reads 0, the shared cell rows
// attach to when their relation is trivially satisfied at a coset.
//
// Go has no manual new T[BlockSize]; a slice of fixed-size blocks gives
// the same "stable handle, bulk-allocated storage" shape a pointer-based
// arena has, with cell handles as plain ints instead of pointers — row
// states borrow by index for the solve's lifetime; the whole arena is
// discarded when Solve returns.
type lstArena struct {
	blocks [][]int
	count  int
}

func newLstArena() *lstArena {
	a := &lstArena{
		blocks: [][]int{make([]int, blockSize)},
	}
	a.count = 1 // reserve index 0 as the null sentinel
	return a
}

// nullIndex is the reserved index of the shared null sentinel cell.
const nullIndex = 0

// alloc reserves a fresh cell initialized to 0 and returns its index.
func (a *lstArena) alloc() int {
	idx := a.count
	a.count++

	block := idx / blockSize
	for block >= len(a.blocks) {
		a.blocks = append(a.blocks, make([]int, blockSize))
	}
	return idx
}

func (a *lstArena) get(idx int) int {
	return a.blocks[idx/blockSize][idx%blockSize]
}

func (a *lstArena) set(idx, val int) {
	a.blocks[idx/blockSize][idx%blockSize] = val
}
