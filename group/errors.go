package group

import "errors"

// Sentinel errors for the group package. Negative rank, unsorted
// subgroup generator lists, and out-of-range generator indices are
// caller bugs (precondition violations): callers should check with
// errors.Is, not pattern-match on message text.
var (
	// ErrNegativeRank indicates a rank argument was negative.
	ErrNegativeRank = errors.New("group: rank must be non-negative")

	// ErrGensNotSorted indicates a generator subset was not given in
	// strictly ascending order.
	ErrGensNotSorted = errors.New("group: generator subset must be sorted ascending")

	// ErrGenOutOfRange indicates a generator index fell outside [0, rank).
	ErrGenOutOfRange = errors.New("group: generator index out of range")
)
