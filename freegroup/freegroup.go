package freegroup

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/freegroups/word"
)

// FreeGroup is a free group over a finite generating alphabet. It is
// immutable once built: all methods are read-only and safe to call
// from multiple goroutines.
type FreeGroup struct {
	alphabet   map[string]struct{} // generator labels, identity included
	generators []word.Word         // single-token words, sorted by label
	identity   word.Word           // single identity token, or the empty word
	idLabel    string              // "" when identity is the empty word
}

// NewFreeGroup builds a free group from a finite set of single-token
// generator Words and a designated identity Word.
//
// Every generator must be exactly one positive (non-inverse) token,
// and labels must be unique. The identity is either the zero-length
// word or a single positive token; a single-token identity that is not
// among the supplied generators is adopted into the alphabet. The
// formal inverses of the generators are derived, not stored: fetch
// them through Inverse.
//
// Returns ErrInvalidGenerator on an empty generator set, a malformed
// generator, a duplicate label, or a malformed identity.
func NewFreeGroup(generators []word.Word, identity word.Word) (*FreeGroup, error) {
	if len(generators) == 0 {
		return nil, fmt.Errorf("%w: generator set is empty", ErrInvalidGenerator)
	}

	g := &FreeGroup{alphabet: make(map[string]struct{}, len(generators)+1)}
	for _, gen := range generators {
		if gen.Len() != 1 {
			return nil, fmt.Errorf("%w: generator %s is not a single token", ErrInvalidGenerator, gen)
		}
		tok := gen.At(0)
		if tok.Inv {
			return nil, fmt.Errorf("%w: generator %s is inverse-marked", ErrInvalidGenerator, gen)
		}
		if _, dup := g.alphabet[tok.Label]; dup {
			return nil, fmt.Errorf("%w: duplicate generator %q", ErrInvalidGenerator, tok.Label)
		}
		g.alphabet[tok.Label] = struct{}{}
		g.generators = append(g.generators, gen)
	}

	switch identity.Len() {
	case 0:
		// Zero-length identity: the empty word plays the role of e.
		g.identity = word.Word{}
	case 1:
		tok := identity.At(0)
		if tok.Inv {
			return nil, fmt.Errorf("%w: identity %s is inverse-marked", ErrInvalidGenerator, identity)
		}
		g.identity = identity
		g.idLabel = tok.Label
		if _, ok := g.alphabet[tok.Label]; !ok {
			// An identity token outside the supplied set joins the alphabet.
			g.alphabet[tok.Label] = struct{}{}
			g.generators = append(g.generators, identity)
		}
	default:
		return nil, fmt.Errorf("%w: identity %s is not a single token or empty", ErrInvalidGenerator, identity)
	}

	sort.Slice(g.generators, func(i, j int) bool {
		return g.generators[i].At(0).Label < g.generators[j].At(0).Label
	})
	return g, nil
}

// Identity returns the identity word of this group.
func (g *FreeGroup) Identity() word.Word {
	return g.identity
}

// Generators returns the generating alphabet as single-token words,
// sorted by label. The slice is a copy.
func (g *FreeGroup) Generators() []word.Word {
	gens := make([]word.Word, len(g.generators))
	copy(gens, g.generators)
	return gens
}

// Contains reports whether every token of w is a generator or a
// derived inverse generator of this group.
func (g *FreeGroup) Contains(w word.Word) bool {
	for i := 0; i < w.Len(); i++ {
		if _, ok := g.alphabet[w.At(i).Label]; !ok {
			return false
		}
	}
	return true
}

// Inverse returns the formal inverse of w: the sequence reversed with
// every sign flipped, except that the identity token is its own
// inverse. Returns ErrNotAMember if w uses tokens outside the
// alphabet.
func (g *FreeGroup) Inverse(w word.Word) (word.Word, error) {
	if !g.Contains(w) {
		return word.Word{}, fmt.Errorf("%w: %s", ErrNotAMember, w)
	}
	toks := make([]word.Token, w.Len())
	for i := 0; i < w.Len(); i++ {
		t := w.At(i)
		if t.Label == g.idLabel && g.idLabel != "" {
			// e⁻¹ = e: keep the identity token positive.
			toks[w.Len()-1-i] = word.Token{Label: t.Label}
			continue
		}
		toks[w.Len()-1-i] = t.Inverse()
	}
	return word.New(toks...), nil
}

// Power raises w to the exp power using square-and-multiply. Negative
// exponents go through the inverse; Power(w, 0) is the identity.
// Returns ErrNotAMember if w uses tokens outside the alphabet. The
// result is not freely reduced; see Reduce.
func (g *FreeGroup) Power(w word.Word, exp int) (word.Word, error) {
	if !g.Contains(w) {
		return word.Word{}, fmt.Errorf("%w: %s", ErrNotAMember, w)
	}
	if exp < 0 {
		inv, err := g.Inverse(w)
		if err != nil {
			return word.Word{}, err
		}
		return g.Power(inv, -exp)
	}
	switch exp {
	case 0:
		return g.identity, nil
	case 1:
		return w, nil
	}
	half, err := g.Power(w, exp/2)
	if err != nil {
		return word.Word{}, err
	}
	rest, err := g.Power(w, exp-exp/2)
	if err != nil {
		return word.Word{}, err
	}
	return half.Concat(rest), nil
}
