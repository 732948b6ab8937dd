// Package nielsen rewrites a finite generating set of a free group
// into an equivalent Nielsen-reduced set.
//
// 🚀 What is Nielsen reduction?
//
//	Given words U in a free group F, Nielsen reduction produces a set V
//	with <U> = <V> (same generated subgroup) such that no element of V
//	can be shortened by multiplying it with another element or its
//	inverse. It is the free-group analogue of Gaussian elimination and
//	is used in:
//	  • Subgroup rank computation (|V| is the rank of <U>)
//	  • Membership testing and rewriting in free groups
//	  • Simplifying presentations before further processing
//
// ✨ How it works:
//
//	Only elementary Nielsen transformations are applied, each of which
//	preserves the generated subgroup:
//	  (T1) replace an element with its inverse
//	  (T2) replace w_i with the freely reduced w_i·w_j^{±1}, i ≠ j
//	  (T3) delete an element that reduces to the identity
//	  (T4) delete a duplicate element
//
//	The reducer runs three phases, following Avenhaus–Madlener:
//	  1. freely reduce every input, drop identities and duplicates, and
//	     keep the shortlex-smaller of each word and its inverse;
//	  2. scan ordered pairs (i, j) left to right with sign order
//	     (+,+), (+,−), (−,+), (−,−) and replace w_i whenever a product
//	     is strictly shorter, restarting after every accepted move;
//	  3. split the shortest even-length word into halves p·q⁻¹ and use
//	     it to rewrite another word carrying q as a prefix (or q⁻¹ as a
//	     suffix), then rerun phase 2.
//
//	Termination: every accepted move strictly decreases (total reduced
//	length, shortlex multiset) lexicographically, a well-founded order,
//	so the loop reaches a fixed point in finitely many steps.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/freegroups/nielsen"
//
//	opts := nielsen.DefaultOptions()
//	v, err := nielsen.Reduce(g, []word.Word{u1, u2, u3}, &opts)
//	if err != nil {
//	  // ErrNilGroup, ErrEmptySet or ErrForeignElement
//	}
//	fmt.Println(nielsen.IsReduced(g, v)) // true
//
// Errors:
//
//   - ErrNilGroup: no free group supplied.
//   - ErrEmptySet: the generating set has no elements.
//   - ErrForeignElement: an input word is not a member of the group.
//
// See examples in example_test.go for a full walkthrough.
package nielsen
