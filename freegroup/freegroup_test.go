package freegroup_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/freegroups/freegroup"
	"github.com/katalvlaran/freegroups/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustGroup builds a free group on single-letter generators with the
// given identity label, failing the test on construction errors.
func mustGroup(t *testing.T, labels string, identity string) *freegroup.FreeGroup {
	t.Helper()
	gens := make([]word.Word, 0, len(labels))
	for _, r := range labels {
		gens = append(gens, word.Gen(string(r)))
	}
	g, err := freegroup.NewFreeGroup(gens, word.Gen(identity))
	require.NoError(t, err, "NewFreeGroup(%q, %q)", labels, identity)
	return g
}

//----------------------------------------------------------------------------//
// NewFreeGroup Tests
//----------------------------------------------------------------------------//

// TestNewFreeGroup_Errors verifies that malformed generator sets and
// identities are rejected with ErrInvalidGenerator.
func TestNewFreeGroup_Errors(t *testing.T) {
	a, b := word.Gen("a"), word.Gen("b")
	cases := []struct {
		name     string
		gens     []word.Word
		identity word.Word
	}{
		{"EmptySet", nil, word.Gen("e")},
		{"MultiTokenGenerator", []word.Word{a.Concat(b)}, word.Gen("e")},
		{"InverseGenerator", []word.Word{a.Inverse()}, word.Gen("e")},
		{"DuplicateGenerator", []word.Word{a, word.Gen("a")}, word.Gen("e")},
		{"MultiTokenIdentity", []word.Word{a, b}, a.Concat(b)},
		{"InverseIdentity", []word.Word{a, b}, word.Gen("e").Inverse()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := freegroup.NewFreeGroup(tc.gens, tc.identity)
			if !errors.Is(err, freegroup.ErrInvalidGenerator) {
				t.Errorf("NewFreeGroup error = %v; want ErrInvalidGenerator", err)
			}
		})
	}
}

// TestNewFreeGroup_EmptyIdentity accepts the zero-length word as the
// designated identity.
func TestNewFreeGroup_EmptyIdentity(t *testing.T) {
	g, err := freegroup.NewFreeGroup([]word.Word{word.Gen("a")}, word.New())
	require.NoError(t, err)
	assert.True(t, g.Identity().IsEmpty())
	assert.Equal(t, 1, len(g.Generators()))
}

// TestNewFreeGroup_MissingIdentity checks that an identity token not in
// the supplied generators is adopted into the alphabet and remains its
// own inverse.
func TestNewFreeGroup_MissingIdentity(t *testing.T) {
	g := mustGroup(t, "abcd", "e")
	e := word.Gen("e")

	assert.True(t, g.Identity().Equal(e))
	assert.True(t, g.Contains(e))

	inv, err := g.Inverse(e)
	require.NoError(t, err)
	assert.True(t, inv.Equal(e), "identity must be a fixed point under inversion")
}

// TestGenerators_SortedCopy verifies deterministic ordering and that
// the returned slice does not alias internal state.
func TestGenerators_SortedCopy(t *testing.T) {
	g := mustGroup(t, "cab", "e")
	gens := g.Generators()
	require.Equal(t, 4, len(gens))

	want := []string{"a", "b", "c", "e"}
	for i, gen := range gens {
		assert.Equal(t, want[i], gen.At(0).Label)
	}

	gens[0] = word.Gen("z")
	assert.Equal(t, "a", g.Generators()[0].At(0).Label)
}

//----------------------------------------------------------------------------//
// Membership and Inverse Tests
//----------------------------------------------------------------------------//

// TestContains checks membership over generators, derived inverses, and
// foreign tokens.
func TestContains(t *testing.T) {
	g := mustGroup(t, "ab", "e")
	a, b := word.Gen("a"), word.Gen("b")

	assert.True(t, g.Contains(a))
	assert.True(t, g.Contains(a.Inverse()), "derived inverses are members")
	assert.True(t, g.Contains(a.Concat(b.Inverse()).Concat(word.Gen("e"))))
	assert.True(t, g.Contains(word.New()), "the empty word is a member")
	assert.False(t, g.Contains(word.Gen("z")))
	assert.False(t, g.Contains(a.Concat(word.Gen("z"))))
}

// TestInverse verifies the derived inverse of a generator and of a
// longer word, plus the ErrNotAMember path.
func TestInverse(t *testing.T) {
	g := mustGroup(t, "abe", "e")
	a, b := word.Gen("a"), word.Gen("b")

	inv, err := g.Inverse(a)
	require.NoError(t, err)
	assert.Equal(t, "a^{-1}", inv.String())

	abInv, err := g.Inverse(a.Concat(b))
	require.NoError(t, err)
	assert.True(t, abInv.Equal(b.Inverse().Concat(a.Inverse())))

	_, err = g.Inverse(word.Gen("z"))
	assert.ErrorIs(t, err, freegroup.ErrNotAMember)
}

// TestInverse_CancelsToIdentity checks w · w⁻¹ ⇒ e for a multi-token
// word, the defining property of the derived inverse.
func TestInverse_CancelsToIdentity(t *testing.T) {
	g := mustGroup(t, "abce", "e")
	abc := word.Gen("a").Concat(word.Gen("b")).Concat(word.Gen("c"))

	inv, err := g.Inverse(abc)
	require.NoError(t, err)
	assert.True(t, g.Reduce(abc.Concat(inv)).Equal(g.Identity()))
}

//----------------------------------------------------------------------------//
// Power Tests
//----------------------------------------------------------------------------//

// TestPower exercises zero, unit, positive, and negative exponents for
// every generator.
func TestPower(t *testing.T) {
	g := mustGroup(t, "abce", "e")
	e := g.Identity()

	for _, x := range []word.Word{word.Gen("a"), word.Gen("b"), word.Gen("c"), e} {
		p0, err := g.Power(x, 0)
		require.NoError(t, err)
		assert.True(t, p0.Equal(e), "x^0 must be the identity")

		p1, err := g.Power(x, 1)
		require.NoError(t, err)
		assert.True(t, p1.Equal(x))

		pm1, err := g.Power(x, -1)
		require.NoError(t, err)
		assert.True(t, g.Reduce(x.Concat(pm1)).Equal(e), "x · x⁻¹ must reduce to e")

		p2, err := g.Power(x, 2)
		require.NoError(t, err)
		assert.True(t, p2.Equal(x.Concat(x)))

		p3, err := g.Power(x, 3)
		require.NoError(t, err)
		assert.True(t, p3.Equal(x.Concat(x).Concat(x)))
	}

	_, err := g.Power(word.Gen("z"), 2)
	assert.ErrorIs(t, err, freegroup.ErrNotAMember)
}
