package word

import "strings"

// InverseSuffix is the textual marker rendered after an inverse token's
// label, matching the usual free-group notation x^{-1}.
const InverseSuffix = "^{-1}"

// Token is a signed occurrence of a generator: the label names the
// generator, Inv marks the formal inverse. Two Tokens are mutual
// inverses iff they share a label and differ in sign.
type Token struct {
	Label string
	Inv   bool
}

// T builds a positive (non-inverse) Token for the given label.
func T(label string) Token {
	return Token{Label: label}
}

// Inverse returns the token with the same label and opposite sign.
func (t Token) Inverse() Token {
	return Token{Label: t.Label, Inv: !t.Inv}
}

// IsInverseOf reports whether t and o share a label and differ in sign.
func (t Token) IsInverseOf(o Token) bool {
	return t.Label == o.Label && t.Inv != o.Inv
}

// String renders the token as "x" or "x^{-1}".
func (t Token) String() string {
	if t.Inv {
		return t.Label + InverseSuffix
	}
	return t.Label
}

// Word is an ordered, possibly empty sequence of Tokens. The zero value
// is the empty word. Words are immutable: every operation returns a new
// Word and never mutates its operands, so values may be freely shared.
type Word struct {
	tokens []Token
}

// New builds a Word from the given token sequence. The sequence is
// copied, so later mutation of the caller's slice cannot leak in.
// Construction never fails: any finite sequence is a valid Word.
func New(tokens ...Token) Word {
	if len(tokens) == 0 {
		return Word{}
	}
	ts := make([]Token, len(tokens))
	copy(ts, tokens)
	return Word{tokens: ts}
}

// Gen builds the one-token Word for a positive generator label.
func Gen(label string) Word {
	return Word{tokens: []Token{{Label: label}}}
}

// Len returns the number of tokens. Length is reduction-independent:
// callers wanting reduced length must reduce first.
func (w Word) Len() int {
	return len(w.tokens)
}

// IsEmpty reports whether the word has no tokens.
func (w Word) IsEmpty() bool {
	return len(w.tokens) == 0
}

// At returns the token at position i. Panics if i is out of range,
// exactly like slice indexing.
func (w Word) At(i int) Token {
	return w.tokens[i]
}

// Tokens returns a copy of the underlying token sequence.
func (w Word) Tokens() []Token {
	if len(w.tokens) == 0 {
		return nil
	}
	ts := make([]Token, len(w.tokens))
	copy(ts, w.tokens)
	return ts
}

// Concat returns the word whose sequence is w's tokens followed by o's.
// No cancellation is performed; see freegroup.FreeGroup.Reduce.
func (w Word) Concat(o Word) Word {
	if len(w.tokens) == 0 {
		return o
	}
	if len(o.tokens) == 0 {
		return w
	}
	ts := make([]Token, 0, len(w.tokens)+len(o.tokens))
	ts = append(ts, w.tokens...)
	ts = append(ts, o.tokens...)
	return Word{tokens: ts}
}

// Inverse returns the formal inverse: the token sequence reversed with
// every sign flipped. Inverse is an involution: w.Inverse().Inverse()
// equals w for every w.
func (w Word) Inverse() Word {
	if len(w.tokens) == 0 {
		return Word{}
	}
	ts := make([]Token, len(w.tokens))
	for i, t := range w.tokens {
		ts[len(ts)-1-i] = t.Inverse()
	}
	return Word{tokens: ts}
}

// Equal reports structural equality: same length, same tokens, same
// order, same signs. No implicit reduction is applied.
func (w Word) Equal(o Word) bool {
	if len(w.tokens) != len(o.tokens) {
		return false
	}
	for i, t := range w.tokens {
		if t != o.tokens[i] {
			return false
		}
	}
	return true
}

// Slice returns the sub-word of tokens in [i, j). Panics on an invalid
// range, exactly like slicing.
func (w Word) Slice(i, j int) Word {
	if i == j {
		return Word{}
	}
	ts := make([]Token, j-i)
	copy(ts, w.tokens[i:j])
	return Word{tokens: ts}
}

// HasPrefix reports whether p's token sequence is a prefix of w's.
func (w Word) HasPrefix(p Word) bool {
	if len(p.tokens) > len(w.tokens) {
		return false
	}
	for i, t := range p.tokens {
		if w.tokens[i] != t {
			return false
		}
	}
	return true
}

// HasSuffix reports whether s's token sequence is a suffix of w's.
func (w Word) HasSuffix(s Word) bool {
	if len(s.tokens) > len(w.tokens) {
		return false
	}
	off := len(w.tokens) - len(s.tokens)
	for i, t := range s.tokens {
		if w.tokens[off+i] != t {
			return false
		}
	}
	return true
}

// String renders the word as its tokens joined by "·", or "ε" for the
// empty word.
func (w Word) String() string {
	if len(w.tokens) == 0 {
		return "ε"
	}
	var b strings.Builder
	for i, t := range w.tokens {
		if i > 0 {
			b.WriteString("·")
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Compare orders a and b in shortlex order: shorter words first, equal
// lengths resolved token by token (label lexicographically, a positive
// token before its inverse). Returns -1, 0, or +1. Compare(a, b) == 0
// iff a.Equal(b).
func Compare(a, b Word) int {
	if len(a.tokens) != len(b.tokens) {
		if len(a.tokens) < len(b.tokens) {
			return -1
		}
		return 1
	}
	for i, t := range a.tokens {
		o := b.tokens[i]
		if t.Label != o.Label {
			if t.Label < o.Label {
				return -1
			}
			return 1
		}
		if t.Inv != o.Inv {
			if o.Inv {
				return -1
			}
			return 1
		}
	}
	return 0
}
