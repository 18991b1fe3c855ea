// Package solver_test provides examples demonstrating Todd–Coxeter
// coset enumeration. Each example is runnable via "go test -run
// Example", showing both code and expected output.
package solver_test

import (
	"fmt"

	"github.com/allemangD/toddcox/group"
	"github.com/allemangD/toddcox/solver"
)

// ExampleSolveGroup enumerates the cosets of the trivial subgroup of
// I2(5), the dihedral group of order 10 (the symmetries of a pentagon).
func ExampleSolveGroup() {
	g := group.I2(5)
	cosets := solver.SolveGroup(g)

	fmt.Println(cosets.Order())
	// Output: 10
}

// ExampleSolve enumerates the cosets of the subgroup generated by the
// first generator of H(3), a parabolic subgroup of index 60 in the
// order-120 icosahedral group.
func ExampleSolve() {
	g := group.H(3)
	cosets := solver.Solve(g, []int{0})

	fmt.Println(cosets.Order())
	// Output: 60
}

// ExampleSolveNested solves an inner generator set's cosets within an
// already-restricted outer subgroup, without materializing the outer
// subgroup explicitly: generators 0 and 1 of H(3) span a rank-2 I2(5)
// subgroup (order 10), and generator 0 alone generates an order-2
// subgroup of it, for an index of 5.
func ExampleSolveNested() {
	g := group.H(3)
	cosets := solver.SolveNested(g, []int{0, 1}, []int{0})

	fmt.Println(cosets.Order())
	// Output: 5
}
