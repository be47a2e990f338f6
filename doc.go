// Package randseq generates deterministic pseudo-random sequences of
// unique unsigned integers — in O(1) time and O(1) memory per value.
//
// 🚀 What is randseq?
//
//	A small, allocation-free library that turns the index space of an
//	unsigned integer width into a seeded permutation of itself:
//		• Every value in range appears exactly once per full traversal
//		• Any position of the sequence is computable directly, no state walk
//		• Two equal seed pairs always reproduce the bit-identical sequence
//		• Forward, backward, cyclic and random access over one shared config
//
// ✨ Why choose randseq?
//
//   - Unique-by-construction – the permutation is a composition of
//     provably bijective stages, not a collision-checked shuffle
//   - Constant cost – no tables to build, no allocation, a handful of multiplies
//   - Deterministic – a two-integer seed pair is the entire state
//   - Honest contract – pseudo-uniform and repeatable, NOT cryptographic
//
// Under the hood, everything is organized under two subpackages:
//
//	permute/  — per-width prime/noise tables, the quadratic-residue
//	            bijection and the seed-mixed permutation core
//	sequence/ — immutable sequence configuration (Builder), the seekable
//	            iterator state machine, entropy-seeded construction and
//	            YAML/JSON codecs for the configuration
//
// Quick sketch of the core idea (Preshing's quadratic-residue trick):
//
//	n(x) = qpr((qpr(x ⊞ base) ⊞ offset) ^ xorNoise)
//
// where qpr squares modulo the largest prime p ≡ 3 (mod 4) of the
// width and reflects the upper half of the domain, and base/offset
// are derived from the two seeds. Every stage is a bijection, so the
// whole chain is one.
//
// Dive into the subpackage docs for the full contract, and examples/
// for runnable demos (card dealing, uniformity analysis).
//
//	go get github.com/katalvlaran/randseq
package randseq
