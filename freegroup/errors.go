package freegroup

import "errors"

// Sentinel errors for freegroup operations.
var (
	// ErrInvalidGenerator indicates a malformed generator or identity
	// definition: an empty generator set, a multi-token or
	// inverse-marked generator, a duplicate label, or a malformed
	// identity word.
	ErrInvalidGenerator = errors.New("freegroup: invalid generator definition")

	// ErrNotAMember indicates a word contains tokens outside this
	// group's alphabet of generators and derived inverses.
	ErrNotAMember = errors.New("freegroup: word is not a member of this group")
)
