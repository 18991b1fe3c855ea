// Command special solves one of the named exceptional Coxeter groups
// (E6, E7, E8, B6, B7, B8) against a subgroup generator set and checks
// the resulting coset count against a target. Usage:
//
//	special NAME "GENS" TARGET
package main

import (
	"fmt"
	"os"

	"github.com/allemangD/toddcox/group"
	"github.com/allemangD/toddcox/internal/cliutil"
	"github.com/allemangD/toddcox/solver"
)

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: special NAME GENS TARGET")
		os.Exit(2)
	}

	name := os.Args[1]
	gens := cliutil.ParseVec(os.Args[2])
	target := cliutil.ParseInt(os.Args[3])

	g, ok := named(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown group: %q\n", name)
		os.Exit(2)
	}

	cosets := solver.Solve(g, gens)

	cliutil.Report(cosets, target)
}

func named(name string) (group.Group, bool) {
	switch name {
	case "E6":
		return group.E(6), true
	case "E7":
		return group.E(7), true
	case "E8":
		return group.E(8), true
	case "B6":
		return group.B(6), true
	case "B7":
		return group.B(7), true
	case "B8":
		return group.B(8), true
	default:
		return group.Group{}, false
	}
}
