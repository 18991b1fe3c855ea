// Command schlafli solves a Schläfli-symbol Coxeter group against a
// subgroup generator set and checks the resulting coset count against a
// target. Usage:
//
//	schlafli "SYMBOL" "GENS" TARGET
//
// SYMBOL and GENS are space-separated integer vectors, e.g.
// schlafli "5 3" "0" 60. Prints "Order: <got>:<target>" and exits 0 if
// they match, nonzero otherwise.
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
		fmt.Fprintln(os.Stderr, "usage: schlafli SYMBOL GENS TARGET")
		os.Exit(2)
	}

	symbol := cliutil.ParseVec(os.Args[1])
	gens := cliutil.ParseVec(os.Args[2])
	target := cliutil.ParseInt(os.Args[3])

	g := group.SchlafliSymbol(symbol)
	cosets := solver.Solve(g, gens)

	cliutil.Report(cosets, target)
}
