package cliutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/allemangD/toddcox/coset"
)

// ParseVec splits a space-separated integer vector, e.g. "5 3" ->
// [5, 3]. Returns nil for an empty string.
func ParseVec(s string) []int {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i] = ParseInt(f)
	}
	return out
}

// ParseInt parses a non-negative base-10 integer, exiting the process
// with a usage error on malformed input — these are CLI argument
// parsers, not library code, so a hard exit is the right failure mode.
func ParseInt(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			fmt.Fprintf(os.Stderr, "invalid integer: %q\n", s)
			os.Exit(2)
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// Report prints "Order: <got>:<target>" and exits 1 if they differ.
func Report(cosets *coset.Cosets, target int) {
	order := cosets.Order()
	fmt.Printf("Order: %d:%d\n", order, target)
	if order != target {
		os.Exit(1)
	}
}
