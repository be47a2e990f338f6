// Package permute implements the numeric core of randseq: a seeded,
// statistically-random-looking bijection over an unsigned integer domain,
// computable in O(1) per value with no allocation.
//
// 🚀 How does it work?
//
//	For a prime p ≡ 3 (mod 4), squaring modulo p maps x and p−x to the
//	same residue; splitting the domain at p/2 and reflecting the upper
//	half (p − residue) recovers a bijection on [0, p]. Values above p
//	(at most a handful per width) map to themselves. That single map,
//	QPR, already visits every value once — but consecutive inputs still
//	look related. Mixer composes two QPR rounds with a modular addition
//	and a xor against fixed per-width noise, with both stages perturbed
//	by the caller's seed pair, to break the visible structure:
//
//	  n(x) = QPR((QPR(x ⊞ base) ⊞ offset) ^ xorMask)
//
//	Each stage is independently a bijection, so the composition is one.
//
// ✨ Key guarantees:
//   - Bijection: {n(x) : x ∈ [0, max]} covers [0, max] with no repeats
//   - Determinism: equal (domain, seed pair) ⇒ bit-identical outputs
//   - Purity: no hidden state; safe for unsynchronized concurrent use
//   - Overflow safety: squaring uses a 128-bit intermediate (math/bits)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/randseq/permute"
//
//	mx, err := permute.NewMixer(permute.W32, seedBase, seedOffset)
//	if err != nil { ... }
//	v := mx.Permute(i) // the i-th element of the permutation
//
// Arbitrary inclusive domains [0, max] are supported through
// NewBoundedMixer, which discovers the largest suitable prime ≤ max
// via FindPrime.
//
// Not cryptographically secure: the contract is uniqueness and
// pseudo-uniformity, not unpredictability.
package permute
