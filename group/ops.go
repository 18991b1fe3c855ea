package group

import "fmt"

// Product returns the direct product of a and b: a rank-(a.Rank()+b.Rank())
// Coxeter group whose matrix is block-diagonal (a's block, then b's block
// shifted by a.Rank()), with every cross entry defaulting to 2 — i.e. a's
// generators and b's generators commute freely with each other, which is
// exactly what a direct product of Coxeter systems means.
func Product(a, b Group) Group {
	rank := a.Rank() + b.Rank()
	g := NewGroup(rank)
	g.name = a.name + "*" + b.name

	for i := 0; i < a.Rank(); i++ {
		for j := 0; j < a.Rank(); j++ {
			g.m[i][j] = a.At(i, j)
		}
	}
	off := a.Rank()
	for i := 0; i < b.Rank(); i++ {
		for j := 0; j < b.Rank(); j++ {
			g.m[off+i][off+j] = b.At(i, j)
		}
	}

	return g
}

// Power returns p side-by-side copies of g's block diagonal, commuting
// freely with each other, the same way Product composes two distinct
// groups.
func Power(g Group, p int) Group {
	rank := g.Rank() * p
	res := NewGroup(rank)
	res.name = fmt.Sprintf("%s^%d", g.name, p)

	for k := 0; k < p; k++ {
		off := k * g.Rank()
		for i := 0; i < g.Rank(); i++ {
			for j := 0; j < g.Rank(); j++ {
				res.m[off+i][off+j] = g.At(i, j)
			}
		}
	}

	return res
}
