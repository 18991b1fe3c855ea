package maskset

// Subsets returns every size-k subset of [0, n), each as an ascending
// []int, in decreasing-mask order: starting from the mask with all k
// trues at the front and repeatedly taking the previous permutation of
// that boolean mask until no earlier permutation remains.
//
// Count: C(n, k). Panics if k > n or either is negative — both are
// caller bugs, not recoverable runtime conditions.
func Subsets(n, k int) [][]int {
	if n < 0 || k < 0 || k > n {
		panic("maskset: invalid n/k")
	}

	mask := make([]bool, n)
	for i := 0; i < k; i++ {
		mask[i] = true
	}

	var res [][]int
	for {
		row := make([]int, 0, k)
		for j := 0; j < n; j++ {
			if mask[j] {
				row = append(row, j)
			}
		}
		res = append(res, row)

		if !prevPermutation(mask) {
			break
		}
	}

	return res
}

// prevPermutation rearranges mask into the lexicographically previous
// permutation (true > false) and reports whether one existed, mirroring
// C++'s std::prev_permutation over a bool sequence.
func prevPermutation(mask []bool) bool {
	n := len(mask)
	if n < 2 {
		return false
	}

	// Find the largest k with mask[k] > mask[k+1] (true immediately before false).
	k := n - 2
	for k >= 0 && !(mask[k] && !mask[k+1]) {
		k--
	}
	if k < 0 {
		return false
	}

	// Find the largest l > k with mask[l] < mask[k] (mask[k] is true, so mask[l] is false).
	l := n - 1
	for mask[l] {
		l--
	}

	mask[k], mask[l] = mask[l], mask[k]

	for a, b := k+1, n-1; a < b; a, b = a+1, b-1 {
		mask[a], mask[b] = mask[b], mask[a]
	}

	return true
}
