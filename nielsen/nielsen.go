package nielsen

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/freegroups/freegroup"
	"github.com/katalvlaran/freegroups/word"
)

// signPairs is the deterministic order in which signed products
// w_i^{e_i}·w_j^{e_j} are tried during phase 2.
var signPairs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// Reduce returns a Nielsen-reduced generating set V with <V> = <set>:
// the subgroup generated is unchanged, every element of V is freely
// reduced and non-identity, and no element can be shortened by
// multiplying it with another element or its inverse.
//
// Inputs need not be freely reduced; Reduce reduces them itself. The
// total reduced length of V never exceeds that of the reduced input,
// and the strictly decreasing length potential guarantees termination.
// A nil opts selects DefaultOptions.
//
// Returns ErrNilGroup, ErrEmptySet, or ErrForeignElement (wrapped with
// the offending word). On error no partial result is returned.
func Reduce(g *freegroup.FreeGroup, set []word.Word, opts *Options) ([]word.Word, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if len(set) == 0 {
		return nil, ErrEmptySet
	}
	for _, u := range set {
		if !g.Contains(u) {
			return nil, fmt.Errorf("%w: %s", ErrForeignElement, u)
		}
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	v := normalize(g, set)
	for {
		v = shortenProducts(g, v)
		var again bool
		if v, again = splitHalves(g, v); !again {
			break
		}
	}

	if o.SortOutput {
		sort.Slice(v, func(i, j int) bool { return word.Compare(v[i], v[j]) < 0 })
	}
	return v, nil
}

// IsReduced reports whether set is Nielsen-reduced with respect to g:
// every element freely reduced and non-identity, no duplicates (up to
// inversion), and no signed pairwise product shorter under free
// reduction than the longer of its two operands.
func IsReduced(g *freegroup.FreeGroup, set []word.Word) bool {
	for i, u := range set {
		if !u.Equal(g.Reduce(u)) || u.Equal(g.Identity()) {
			return false
		}
		for j, w := range set {
			if i == j {
				continue
			}
			if u.Equal(w) || u.Equal(w.Inverse()) {
				return false
			}
			for _, s := range signPairs {
				prod := g.Reduce(signed(u, s[0]).Concat(signed(w, s[1])))
				if prod.Len() < max(u.Len(), w.Len()) {
					return false
				}
			}
		}
	}
	return true
}

// signed returns w for a positive exponent and w⁻¹ for a negative one.
func signed(w word.Word, exp int) word.Word {
	if exp < 0 {
		return w.Inverse()
	}
	return w
}

// orient returns the shortlex-smaller of w and its inverse, the
// canonical orientation an element is stored under. Only called on
// freely reduced non-identity words, where w and w⁻¹ never coincide.
func orient(w word.Word) word.Word {
	if inv := w.Inverse(); word.Compare(inv, w) < 0 {
		return inv
	}
	return w
}

// contains reports whether v already holds w.
func contains(v []word.Word, w word.Word) bool {
	for _, u := range v {
		if u.Equal(w) {
			return true
		}
	}
	return false
}

// remove drops the element at index i, preserving order.
func remove(v []word.Word, i int) []word.Word {
	return append(v[:i], v[i+1:]...)
}

// normalize is phase 1: freely reduce every input, drop identities
// (T3), store each survivor in canonical orientation (T1), and drop
// duplicates (T4).
func normalize(g *freegroup.FreeGroup, set []word.Word) []word.Word {
	v := make([]word.Word, 0, len(set))
	for _, u := range set {
		r := g.Reduce(u)
		if r.Equal(g.Identity()) {
			continue
		}
		r = orient(r)
		if !contains(v, r) {
			v = append(v, r)
		}
	}
	return v
}

// shortenProducts is phase 2: repeatedly scan ordered pairs (i, j),
// i ≠ j, in index order with signPairs sign order, and replace w_i by
// the freely reduced product w_i^{e_i}·w_j^{e_j} whenever that product
// is strictly shorter than w_i (T2). Only strict decreases are
// accepted, so the total reduced length falls on every move and the
// scan reaches a fixed point.
func shortenProducts(g *freegroup.FreeGroup, v []word.Word) []word.Word {
	for improved := true; improved; {
		improved = false
	scan:
		for i := 0; i < len(v); i++ {
			for j := 0; j < len(v); j++ {
				if i == j {
					continue
				}
				for _, s := range signPairs {
					cand := g.Reduce(signed(v[i], s[0]).Concat(signed(v[j], s[1])))
					if cand.Len() >= v[i].Len() {
						continue
					}
					v = remove(v, i)
					if !cand.Equal(g.Identity()) {
						if c := orient(cand); !contains(v, c) {
							v = append(v, c)
						}
					}
					improved = true
					break scan
				}
			}
		}
	}
	return v
}

// splitHalves is phase 3: look for the shortest even-length word
// u_j = p·q⁻¹ whose half q is a prefix of another word u_k = q·c⁻¹ (or
// whose q⁻¹ is a suffix of u_k = c·q⁻¹), and replace u_k with the
// freely reduced u_j·u_k = p·c⁻¹ (resp. u_k·u_j⁻¹ = c·p⁻¹). The
// replacement never lengthens u_k; it is accepted only when its
// canonical orientation is strictly shortlex-smaller than u_k, so the
// sorted multiset of words strictly decreases and the phase cannot
// cycle. Reports whether a replacement happened, in which case phase 2
// must run again.
func splitHalves(g *freegroup.FreeGroup, v []word.Word) ([]word.Word, bool) {
	// Shortlex order makes the index scan visit shorter u_j first.
	sort.Slice(v, func(i, j int) bool { return word.Compare(v[i], v[j]) < 0 })

	for j := 0; j < len(v); j++ {
		n := v[j].Len()
		if n == 0 || n%2 != 0 {
			continue
		}
		p := v[j].Slice(0, n/2)
		qInv := v[j].Slice(n/2, n)
		q := qInv.Inverse()

		for k := 0; k < len(v); k++ {
			if k == j {
				continue
			}
			var cand word.Word
			switch {
			case v[k].HasPrefix(q):
				cInv := v[k].Slice(q.Len(), v[k].Len())
				cand = g.Reduce(p.Concat(cInv))
			case v[k].HasSuffix(qInv):
				c := v[k].Slice(0, v[k].Len()-qInv.Len())
				cand = g.Reduce(c.Concat(p.Inverse()))
			default:
				continue
			}
			if cand.Equal(g.Identity()) {
				return remove(v, k), true
			}
			r := orient(cand)
			if word.Compare(r, v[k]) >= 0 {
				continue
			}
			v = remove(v, k)
			if !contains(v, r) {
				v = append(v, r)
			}
			return v, true
		}
	}
	return v, false
}
