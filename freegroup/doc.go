// Package freegroup models a free group over a finite generating
// alphabet and computes freely reduced forms of its words.
//
// What:
//
//   - FreeGroup wraps a finite set of single-token generator Words plus
//     a designated identity Word.
//   - Derives the formal inverse of every generator (same label,
//     opposite sign) on demand — inverses are computed, never stored as
//     extra group elements.
//   - Answers membership: a Word belongs to the group iff every token
//     is a generator or a derived inverse.
//   - Reduce computes the canonical freely reduced form of a member
//     word by cancelling adjacent inverse pairs to a fixed point.
//   - Power raises a word to an integer exponent, negative exponents
//     going through the inverse.
//
// Why:
//
//   - Words are equivalent in a free group exactly when their freely
//     reduced forms coincide; Reduce is the workhorse every higher
//     algorithm (Nielsen reduction in particular) leans on.
//
// Complexity:
//
//   - NewFreeGroup: O(g) over the generator count.
//   - Contains: O(n) over the word length.
//   - Inverse: O(n).
//   - Reduce: O(n) — a single left-to-right stack pass; each removal
//     shortens the word by two, so at most n/2 removals happen.
//   - Power(w, k): O(n·|k|) tokens assembled via square-and-multiply.
//
// Errors:
//
//   - ErrInvalidGenerator: malformed generator or identity definition.
//   - ErrNotAMember: a word built from tokens outside this group's
//     alphabet was passed where a member was required.
//
// Determinism: free reduction is confluent — the reduced form does not
// depend on cancellation order — and Reduce always returns that unique
// canonical form. All methods are pure; FreeGroup is immutable after
// construction and safe for concurrent use.
package freegroup
