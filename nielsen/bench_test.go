package nielsen_test

import (
	"testing"

	"github.com/katalvlaran/freegroups/freegroup"
	"github.com/katalvlaran/freegroups/nielsen"
	"github.com/katalvlaran/freegroups/word"
)

// benchmarkReduce runs Reduce on a staircase set over k generators:
// element i is the concatenation g_0·g_1·…·g_i, so the whole set
// collapses back to the free basis. It resets the timer before the
// loop and fails on unexpected errors.
func benchmarkReduce(b *testing.B, k int) {
	labels := "abcdefghij"
	gens := make([]word.Word, 0, k+1)
	for i := 0; i < k; i++ {
		gens = append(gens, word.Gen(string(labels[i])))
	}
	gens = append(gens, word.Gen("e"))
	g, err := freegroup.NewFreeGroup(gens, word.Gen("e"))
	if err != nil {
		b.Fatalf("NewFreeGroup failed: %v", err)
	}

	set := make([]word.Word, k)
	stair := word.New()
	for i := 0; i < k; i++ {
		stair = stair.Concat(word.Gen(string(labels[i])))
		set[i] = stair
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nielsen.Reduce(g, set, nil); err != nil {
			b.Fatalf("Reduce failed: %v", err)
		}
	}
}

// BenchmarkReduce_Small benchmarks a 4-generator staircase set.
func BenchmarkReduce_Small(b *testing.B) {
	benchmarkReduce(b, 4)
}

// BenchmarkReduce_Medium benchmarks an 8-generator staircase set.
func BenchmarkReduce_Medium(b *testing.B) {
	benchmarkReduce(b, 8)
}

// BenchmarkFreeReduce benchmarks free reduction of a fully
// self-cancelling word w·w⁻¹ with |w| = 64.
func BenchmarkFreeReduce(b *testing.B) {
	a, e := word.Gen("a"), word.Gen("e")
	bb := word.Gen("b")
	g, err := freegroup.NewFreeGroup([]word.Word{a, bb, e}, e)
	if err != nil {
		b.Fatalf("NewFreeGroup failed: %v", err)
	}

	w := word.New()
	for i := 0; i < 32; i++ {
		w = w.Concat(a).Concat(bb)
	}
	w = w.Concat(w.Inverse())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := g.Reduce(w); !got.Equal(g.Identity()) {
			b.Fatalf("Reduce(w·w⁻¹) = %v; want identity", got)
		}
	}
}
