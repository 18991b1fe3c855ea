// Package coset_test provides examples demonstrating how to build a
// Cosets table by hand and replay computations across its spanning
// Path. Each example is runnable via "go test -run Example", showing
// both code and expected output.
package coset_test

import (
	"fmt"

	"github.com/allemangD/toddcox/coset"
)

// ExampleCosets builds a tiny 3-coset, rank-2 table by hand and reads
// it back: gen0 swaps cosets 0 and 1 and fixes 2; gen1 swaps 0 and 2
// and fixes 1.
func ExampleCosets() {
	c := coset.NewCosets(2)
	c.AddRow()
	c.AddRow()
	c.AddRow()
	c.Put(0, 0, 1)
	c.Put(0, 1, 2)
	c.Put(1, 1, 1)
	c.Put(2, 0, 2)

	fmt.Println(c.Order(), c.Rank())
	fmt.Println(c.Get(0, 0), c.Get(1, 0))
	fmt.Println(c.Get(0, 1), c.Get(2, 1))
	// Output:
	// 3 2
	// 1 0
	// 2 0
}

// ExampleWalk replays the identity coset mapping across a table's
// spanning Path, reconstructing each coset's own index.
func ExampleWalk() {
	c := coset.NewCosets(2)
	c.AddRow()
	c.AddRow()
	c.AddRow()
	c.Put(0, 0, 1)
	c.Put(0, 1, 2)
	c.Put(1, 1, 1)
	c.Put(2, 0, 2)

	path := c.Path()
	visits := coset.Walk(path, 0, func(acc, gen int) int {
		return c.Get(acc, gen)
	})

	fmt.Println(visits)
	// Output: [0 1 2]
}
