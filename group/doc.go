// Package group implements Coxeter matrices: the symmetric integer
// presentation matrices that define a Coxeter group's generators and
// relations, plus the standard constructions built on them (Schläfli
// symbols, subgroup restriction, subgroup enumeration, direct products,
// and repeated powers).
//
// Overview:
//
//   - A Coxeter matrix M of rank r satisfies M[i][i] = 1 and M[i][j] >= 2
//     for i != j, where M[i][j] = k means the relation (g_i g_j)^k = e
//     holds between generators g_i and g_j.
//   - Group is immutable once constructed; every transformation
//     (Subgroup, Product, Power) returns a new value rather than
//     mutating its receiver.
//   - Schlafli/SchlafliSymbol build a linear-diagram matrix from a
//     mults list; the named catalog (A, B, D, E, F4, G2, H, I2, T, U)
//     builds the standard families on top of that.
//
// Errors:
//
//	ErrNegativeRank   - a constructor was asked for a negative rank.
//	ErrGensNotSorted  - a generator subset was not ascending.
//	ErrGenOutOfRange  - a generator index fell outside [0, rank).
package group
