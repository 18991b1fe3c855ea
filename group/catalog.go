package group

import "fmt"

// The standard named Coxeter groups, built from their Schläfli symbols.
// Straightforward construction; kept terse by design.

// A returns the rank-n simplex group: Schläfli [3, 3, ..., 3] (n-1 threes).
func A(n int) Group {
	return Schlafli(fill(n-1, 3), fmt.Sprintf("A(%d)", n))
}

// B returns the rank-n hypercube/orthoplex group: Schläfli [4, 3, ..., 3].
func B(n int) Group {
	mults := fill(n-1, 3)
	if len(mults) > 0 {
		mults[0] = 4
	}
	return Schlafli(mults, fmt.Sprintf("B(%d)", n))
}

// D returns the rank-n demicube group: Schläfli [3,...,3,2] with an
// extra M[1, n-1] = M[n-1, 1] = 3.
func D(n int) Group {
	mults := fill(n-1, 3)
	if len(mults) > 0 {
		mults[len(mults)-1] = 2
	}
	g := Schlafli(mults, fmt.Sprintf("D(%d)", n))
	g.m[1][n-1] = 3
	g.m[n-1][1] = 3
	return g
}

// E returns the rank-n exceptional group: Schläfli [3,...,3,2] with an
// extra M[2, n-1] = M[n-1, 2] = 3.
func E(n int) Group {
	mults := fill(n-1, 3)
	if len(mults) > 0 {
		mults[len(mults)-1] = 2
	}
	g := Schlafli(mults, fmt.Sprintf("E(%d)", n))
	g.m[2][n-1] = 3
	g.m[n-1][2] = 3
	return g
}

// F4 returns the 24-cell group: Schläfli [3, 4, 3].
func F4() Group {
	return Schlafli([]int{3, 4, 3}, "F4")
}

// G2 returns the hexagon group: Schläfli [6].
func G2() Group {
	return Schlafli([]int{6}, "G2")
}

// H returns the rank-n icosahedral group: Schläfli [5, 3, ..., 3].
func H(n int) Group {
	mults := fill(n-1, 3)
	if len(mults) > 0 {
		mults[0] = 5
	}
	return Schlafli(mults, fmt.Sprintf("H(%d)", n))
}

// I2 returns the rank-2 polygonal group: Schläfli [n].
func I2(n int) Group {
	return Schlafli([]int{n}, fmt.Sprintf("I2(%d)", n))
}

// T2 returns the toroidal group I2(n) * I2(m): Schläfli [n, 2, m].
func T2(n, m int) Group {
	return Schlafli([]int{n, 2, m}, fmt.Sprintf("T(%d,%d)", n, m))
}

// T returns the toroidal group T2(n, n): Schläfli [n, 2, n].
func T(n int) Group {
	return Schlafli([]int{n, 2, n}, fmt.Sprintf("T(%d)", n))
}

// U returns the rank-n group whose every off-diagonal entry is 2: every
// pair of distinct generators commutes.
func U(rank int) Group {
	return NewGroup(rank).WithName(fmt.Sprintf("U(%d)", rank))
}

func fill(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
