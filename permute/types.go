// Package permute defines the closed width enumeration, the per-width
// prime/noise tables, and sentinel errors for the permutation core.
package permute

import (
	"errors"
	"math/bits"
)

// Sentinel errors for permute operations.
var (
	// ErrUnknownWidth is returned when a Width value is outside the
	// supported enumeration.
	ErrUnknownWidth = errors.New("permute: unknown width")
)

// Width selects one of the supported unsigned integer bit-widths.
//
// It is a closed enumeration, not a free-form bit count: each variant
// carries its own largest prime p ≡ 3 (mod 4) and noise constants, and
// only these variants are verified to produce a bijection. WUint
// resolves to W32 or W64 depending on the platform word size.
type Width uint8

const (
	// W8 covers the 8-bit domain [0, 255].
	W8 Width = iota
	// W16 covers the 16-bit domain [0, 65535].
	W16
	// W32 covers the 32-bit domain [0, 4294967295].
	W32
	// W64 covers the full 64-bit domain.
	W64
	// WUint covers the platform word: W32 semantics on 32-bit
	// platforms, W64 semantics on 64-bit platforms.
	WUint
)

// widthSpec holds the fixed constants of one width. The prime is the
// largest prime p with p ≡ 3 (mod 4) representable in the width.
type widthSpec struct {
	bits  int
	max   uint64
	prime uint64
}

// Noise masters. Per-width noise constants are truncations of these.
// offsetNoise64 seeds the additive stage, xorNoise64 the xor stage;
// both are arbitrary odd-looking constants fixed once for all
// configurations (changing them changes every sequence ever emitted).
const (
	offsetNoise64 uint64 = 0x682F0161682F0161
	xorNoise64    uint64 = 0x5BF036355BF03635
)

// widthTab is indexed by the normalized width (W8..W64).
var widthTab = [4]widthSpec{
	{bits: 8, max: 1<<8 - 1, prime: 251},
	{bits: 16, max: 1<<16 - 1, prime: 65519},
	{bits: 32, max: 1<<32 - 1, prime: 4294967291},
	{bits: 64, max: 1<<64 - 1, prime: 18446744073709551427},
}

// norm maps WUint onto the concrete platform width.
func (w Width) norm() Width {
	if w == WUint {
		if bits.UintSize == 32 {
			return W32
		}
		return W64
	}
	return w
}

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	return w <= WUint
}

// Bits returns the bit size of the width, or 0 for an invalid width.
func (w Width) Bits() int {
	if !w.Valid() {
		return 0
	}
	return widthTab[w.norm()].bits
}

// Max returns the largest representable value of the width (inclusive),
// or 0 for an invalid width.
func (w Width) Max() uint64 {
	if !w.Valid() {
		return 0
	}
	return widthTab[w.norm()].max
}

// Prime returns the width's fixed prime: the largest prime p ≡ 3 (mod 4)
// representable in the width. Returns 0 for an invalid width.
func (w Width) Prime() uint64 {
	if !w.Valid() {
		return 0
	}
	return widthTab[w.norm()].prime
}

// OffsetNoise returns the width's fixed additive noise constant.
func (w Width) OffsetNoise() uint64 {
	return offsetNoise64 & w.Max()
}

// XorNoise returns the width's fixed xor noise constant.
func (w Width) XorNoise() uint64 {
	return xorNoise64 & w.Max()
}

// String implements fmt.Stringer.
func (w Width) String() string {
	switch w {
	case W8:
		return "u8"
	case W16:
		return "u16"
	case W32:
		return "u32"
	case W64:
		return "u64"
	case WUint:
		return "uint"
	default:
		return "invalid"
	}
}
