package nielsen

import "errors"

// Sentinel errors for Nielsen reduction.
var (
	// ErrNilGroup indicates Reduce was called without a free group.
	ErrNilGroup = errors.New("nielsen: free group must not be nil")

	// ErrEmptySet indicates the generating set has no elements.
	ErrEmptySet = errors.New("nielsen: generating set must not be empty")

	// ErrForeignElement indicates an input word is not a member of the
	// supplied free group.
	ErrForeignElement = errors.New("nielsen: word is not a member of the group")
)
