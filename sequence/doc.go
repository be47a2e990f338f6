// Package sequence exposes the permutation core as a configurable,
// seekable stream of unique pseudo-random integers.
//
// 🚀 What is a sequence?
//
//	A Builder is an immutable configuration: a width, a two-integer
//	seed pair and an inclusive upper bound. It fully determines one
//	permutation of [0, Max] — nothing else is state. From one Builder
//	you can spawn any number of independent iterators (Sequence), each
//	with its own cursor, in one of two traversal modes:
//		• Terminating — every index visited once, then exhaustion
//		• Wrapping    — cycles through the full range forever
//
// ✨ Key guarantees:
//   - Full coverage: a terminating traversal emits every value of
//     [0, Max] exactly once; a wrapping one has period Max+1
//   - O(1) random access: N(i) computes any position directly
//   - Determinism: equal Builders produce bit-identical sequences
//   - Independence: iterators over a shared Builder never interfere
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/randseq/sequence"
//
//	b := sequence.New(permute.W32, seedBase, seedOffset)
//	seq, err := b.Sequence(sequence.Terminating)
//	if err != nil { ... }
//	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
//	  // every 32-bit value exactly once, in pseudo-random order
//	}
//
// Randomized construction draws the seed pair from any injected
// io.Reader (crypto/rand.Reader in the examples); the package itself
// never picks an entropy source. Builders round-trip through YAML and
// JSON as exactly the width, the seed pair and (for bounded domains)
// the max — see codec.go.
//
// Concurrency: Builders are immutable and freely shared. A *Sequence
// is a private cursor: advancing it is a read-modify-write and needs
// external synchronization if shared, but distinct cursors are always
// safe, even over one Builder.
//
// Not cryptographically secure; see the permute package for the math.
package sequence
