// Package freegroups is a small, pure-Go toolkit for computing with
// free groups over a finite generating alphabet — words, free
// reduction, and Nielsen reduction of generating sets.
//
// 🚀 What is freegroups?
//
//	A zero-dependency library that brings together:
//		• Word primitives: signed generator tokens, concatenation, inversion
//		• FreeGroup: finite alphabets with derived inverses and membership
//		• Free reduction: canonical cancellation of adjacent inverse pairs
//		• Nielsen reduction: rewriting a generating set into a
//		  Nielsen-reduced one via elementary transformations
//
// ✨ Why choose freegroups?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every operation is a pure function of its inputs
//   - Pure Go – no cgo, no hidden deps
//   - Value semantics – Words are immutable; nothing is ever mutated
//
// Everything is organized under three subpackages:
//
//	word/      — Token and the immutable Word value type
//	freegroup/ — FreeGroup construction, membership, inverses, free reduction
//	nielsen/   — Nielsen reduction of finite generating sets
//
// Quick example:
//
//	a·b·b⁻¹·a⁻¹  ──reduce──▶  e
//
//	the word on the left freely reduces to the identity, since every
//	adjacent generator/inverse pair cancels.
//
// Dive into each package's doc.go and example_test.go for full
// walkthroughs, complexity notes, and the error taxonomy.
//
//	go get github.com/katalvlaran/freegroups
package freegroups
