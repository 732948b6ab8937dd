// Package word defines the Token and Word value types that every other
// package in freegroups operates on.
//
// What:
//
//   - Token is a signed occurrence of a generator label: either the
//     generator itself (x) or its formal inverse (x^{-1}).
//   - Word is an immutable, possibly empty sequence of Tokens with
//     structural equality, concatenation, inversion, slicing, and
//     prefix/suffix queries.
//   - Compare orders Words in shortlex order (length first, then
//     token-by-token), giving the rest of the library a deterministic
//     total order.
//
// Why:
//
//   - Free-group algorithms (free reduction, Nielsen reduction) are
//     defined on raw token sequences; keeping the sequence type dumb
//     and immutable keeps those algorithms pure.
//   - Equality is structural and reduction-free: Gen("a").Concat(e)
//     is NOT equal to Gen("a") — reduction is an explicit operation in
//     package freegroup, never an implicit side effect here.
//
// Complexity:
//
//   - Concat: O(n+m) copy. Inverse: O(n). Equal/Compare: O(min(n,m)).
//   - All operations allocate fresh backing storage; a Word handed out
//     is never aliased to a caller-visible slice.
//
// Errors: none. The type has no invalid states: any finite token
// sequence, including the empty one, is a valid Word.
package word
