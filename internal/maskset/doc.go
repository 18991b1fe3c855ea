// Package maskset enumerates fixed-size subsets of [0, n) via repeated
// std::prev_permutation-style rotation of a boolean mask with k leading
// trues: subsets are produced from the "largest first" mask down to the
// "smallest first" mask. Decreasing-mask order yields the subsets, read
// as ascending index lists, in ascending lexicographic order.
//
// Both group.Subgroups and mesh.Combinations need exactly this
// enumeration, so it lives here once instead of being ported twice.
package maskset
