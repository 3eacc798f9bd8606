package multicomb

import "errors"

var (
	// ErrInvalidIndex reports a subset index outside the element collection.
	ErrInvalidIndex = errors.New("subset index out of range")
	// ErrLenMismatch reports elements and factors of different lengths.
	ErrLenMismatch = errors.New("elements and factors must have same length")
	// ErrNegativeFactor reports a nil or negative factor; the bit
	// decomposition is undefined for negative integers.
	ErrNegativeFactor = errors.New("factors must be non-negative")
	// ErrRoundLimit reports that the merge loop hit its round cap without
	// resolving every subset. This is an internal invariant violation, not a
	// caller error.
	ErrRoundLimit = errors.New("merge loop exceeded round limit")
)
