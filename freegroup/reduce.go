package freegroup

import "github.com/katalvlaran/freegroups/word"

// Reduce returns the freely reduced form of w: identity tokens are
// stripped, then adjacent mutually inverse pairs are cancelled until
// none remain. A word that cancels away completely reduces to the
// group identity.
//
// Reduction is confluent, so the result is the unique canonical
// reduced form of w regardless of cancellation order; this
// implementation uses a single left-to-right stack pass. Reduce is
// idempotent: Reduce(Reduce(w)) == Reduce(w).
//
// Complexity: O(n) time and memory over the token count of w.
func (g *FreeGroup) Reduce(w word.Word) word.Word {
	stack := make([]word.Token, 0, w.Len())
	for i := 0; i < w.Len(); i++ {
		t := w.At(i)
		if g.idLabel != "" && t.Label == g.idLabel {
			// Identity tokens contribute nothing and would block
			// cancellation across them.
			continue
		}
		if n := len(stack); n > 0 && stack[n-1].IsInverseOf(t) {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, t)
	}
	if len(stack) == 0 {
		return g.identity
	}
	return word.New(stack...)
}
