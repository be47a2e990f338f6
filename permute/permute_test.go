package permute_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/randseq/permute"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQPR_KnownValues pins hand-checked residues against the u8 prime.
func TestQPR_KnownValues(t *testing.T) {
	// 97 ≤ 251/2 → plain residue: 97² mod 251 = 122.
	assert.Equal(t, uint64(122), permute.QPR(97, 251))
	// 122 ≤ 251/2 → 122² mod 251 = 75.
	assert.Equal(t, uint64(75), permute.QPR(122, 251))
	// 240 > 251/2 → reflected: 251 − (240² mod 251) = 130.
	assert.Equal(t, uint64(130), permute.QPR(240, 251))
	// Fixed points of the map.
	assert.Equal(t, uint64(0), permute.QPR(0, 251))
	assert.Equal(t, uint64(251), permute.QPR(251, 251))
}

// TestQPR_IdentityAbovePrime verifies the untouched tail (prime, max].
func TestQPR_IdentityAbovePrime(t *testing.T) {
	for x := uint64(252); x <= 255; x++ {
		assert.Equal(t, x, permute.QPR(x, 251), "values above the prime map to themselves")
	}
	assert.Equal(t, uint64(math.MaxUint64), permute.QPR(math.MaxUint64, 4294967291))
}

// TestQPR_DegeneratePrimes verifies identity behavior for primes < 3,
// which FindPrime emits for tiny domains.
func TestQPR_DegeneratePrimes(t *testing.T) {
	for _, prime := range []uint64{0, 1, 2} {
		for x := uint64(0); x < 8; x++ {
			assert.Equal(t, x, permute.QPR(x, prime))
		}
	}
}

// TestQPR_BijectionU8 exhaustively confirms that QPR permutes the full
// 8-bit domain: the prime region by residue/reflection, the tail by identity.
func TestQPR_BijectionU8(t *testing.T) {
	seen := make(map[uint64]uint64, 256)
	for x := uint64(0); x <= 255; x++ {
		y := permute.QPR(x, 251)
		require.LessOrEqual(t, y, uint64(255))
		prev, dup := seen[y]
		require.False(t, dup, "QPR(%d) and QPR(%d) both map to %d", prev, x, y)
		seen[y] = x
	}
	assert.Len(t, seen, 256)
}

// TestQPR_OverflowSafety squares inputs whose product exceeds 64 bits;
// the 128-bit intermediate must keep the residue exact.
func TestQPR_OverflowSafety(t *testing.T) {
	const prime = uint64(18446744073709551427)
	// 2^32 ≤ prime/2, so the result is (2^64) mod prime = 2^64 − prime = 189.
	assert.Equal(t, uint64(189), permute.QPR(1<<32, prime))
}

// TestWidth_Table checks every width's constants against the invariants:
// the prime is ≡ 3 (mod 4), representable, and maximal for the width.
func TestWidth_Table(t *testing.T) {
	for _, w := range []permute.Width{permute.W8, permute.W16, permute.W32, permute.W64, permute.WUint} {
		require.True(t, w.Valid(), "%s must be a valid width", w)
		p := w.Prime()
		assert.Equal(t, uint64(3), p%4, "%s prime must be 3 mod 4", w)
		assert.LessOrEqual(t, p, w.Max(), "%s prime must fit the width", w)
		assert.Equal(t, p, permute.FindPrime(w.Max()), "%s prime must be the largest suitable one", w)
		assert.LessOrEqual(t, w.OffsetNoise(), w.Max())
		assert.LessOrEqual(t, w.XorNoise(), w.Max())
	}
}

// TestWidth_Invalid verifies that out-of-enumeration widths are rejected.
func TestWidth_Invalid(t *testing.T) {
	bad := permute.Width(99)
	assert.False(t, bad.Valid())
	assert.Zero(t, bad.Bits())
	assert.Zero(t, bad.Max())
	assert.Zero(t, bad.Prime())

	_, err := permute.NewMixer(bad, 0, 0)
	assert.ErrorIs(t, err, permute.ErrUnknownWidth)
}

// TestFindPrime_Values pins the discovery walk on boundary cases.
func TestFindPrime_Values(t *testing.T) {
	cases := []struct{ max, want uint64 }{
		{0, 0}, {1, 1}, {2, 2}, {3, 3},
		{4, 3}, {5, 3}, {6, 3}, {7, 7},
		{100, 83}, {101, 83},
		{255, 251},
		{65535, 65519},
		{4294967295, 4294967291},
		{math.MaxUint64, 18446744073709551427},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, permute.FindPrime(c.max), "FindPrime(%d)", c.max)
	}
}

// TestMixer_GoldenVectors pins the canonical outputs of the full-width
// permutation. Any change to the noise tables or the seed derivation is
// a breaking change and must show up here first.
func TestMixer_GoldenVectors(t *testing.T) {
	cases := []struct {
		name       string
		width      permute.Width
		seedBase   uint64
		seedOffset uint64
		want       []uint64
	}{
		{"u8/0/0", permute.W8, 0, 0, []uint64{130, 32, 167, 229, 9, 1, 25, 208}},
		{"u16/0/0", permute.W16, 0, 0, []uint64{29526, 56470, 17562, 9046}},
		{"u16/dead/beef", permute.W16, 0xDEAD, 0xBEEF, []uint64{13833, 8373, 19712, 16360}},
		{"u32/0/0", permute.W32, 0, 0, []uint64{109914064, 245838987, 3120305643, 1176795982}},
		{"u64/0/0", permute.W64, 0, 0, []uint64{2919005090645957809, 15145106468262741588, 5798617828039471243, 18014603000745856840}},
		{"u64/lcg", permute.W64, 6364136223846793005, 1442695040888963407, []uint64{80050685525656149, 11747406752963779439, 7283180705512411424, 3475233824865504004}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mx, err := permute.NewMixer(c.width, c.seedBase, c.seedOffset)
			require.NoError(t, err)
			for i, want := range c.want {
				assert.Equal(t, want, mx.Permute(uint64(i)), "n(%d)", i)
			}
		})
	}
}

// TestMixer_BijectionExhaustive walks the complete u8 and u16 domains
// for several seed pairs and requires every value exactly once.
func TestMixer_BijectionExhaustive(t *testing.T) {
	seedPairs := [][2]uint64{{0, 0}, {1, 0}, {0, 1}, {12345, 67890}, {math.MaxUint64, 17}}
	for _, w := range []permute.Width{permute.W8, permute.W16} {
		for _, seeds := range seedPairs {
			mx, err := permute.NewMixer(w, seeds[0], seeds[1])
			require.NoError(t, err)
			assertBijection(t, mx, w.Max())
		}
	}
}

// TestMixer_SampledDistinct samples a long prefix of the u32 and u64
// permutations; the bijection guarantees no repeats among any prefix.
func TestMixer_SampledDistinct(t *testing.T) {
	for _, w := range []permute.Width{permute.W32, permute.W64, permute.WUint} {
		mx, err := permute.NewMixer(w, 987654321, 123456789)
		require.NoError(t, err)
		seen := make(map[uint64]struct{}, 100000)
		for i := uint64(0); i < 100000; i++ {
			v := mx.Permute(i)
			require.LessOrEqual(t, v, w.Max())
			_, dup := seen[v]
			require.False(t, dup, "%s: duplicate output at index %d", w, i)
			seen[v] = struct{}{}
		}
	}
}

// TestMixer_Determinism builds the same mixer twice and compares a
// sampled slice of outputs bit for bit.
func TestMixer_Determinism(t *testing.T) {
	a, err := permute.NewMixer(permute.W64, 42, 1337)
	require.NoError(t, err)
	b, err := permute.NewMixer(permute.W64, 42, 1337)
	require.NoError(t, err)
	for i := uint64(0); i < 4096; i++ {
		assert.Equal(t, a.Permute(i), b.Permute(i))
	}
}

// TestMixer_SeedSensitivity checks that changing only seedBase moves
// n(0) with overwhelming probability. This is statistical, not
// absolute: a rare seed pair may collide on a single index.
func TestMixer_SeedSensitivity(t *testing.T) {
	ref, err := permute.NewMixer(permute.W64, 0, 0)
	require.NoError(t, err)
	refN0 := ref.Permute(0)

	differing := 0
	for s := uint64(1); s <= 200; s++ {
		mx, merr := permute.NewMixer(permute.W64, s, 0)
		require.NoError(t, merr)
		if mx.Permute(0) != refN0 {
			differing++
		}
	}
	assert.GreaterOrEqual(t, differing, 195, "seedBase must perturb n(0) almost always")
}

// TestBoundedMixer_GoldenVectors pins bounded-domain outputs, covering
// both the power-of-two bound (xor stage active) and general bounds
// (xor stage disabled).
func TestBoundedMixer_GoldenVectors(t *testing.T) {
	deck := permute.NewBoundedMixer(51, 7, 3)
	assert.Equal(t, uint64(47), deck.Prime())
	assert.Equal(t, uint64(51), deck.Max())
	wantDeck := []uint64{9, 23, 38, 2, 33, 20, 43, 0, 25, 17}
	for i, want := range wantDeck {
		assert.Equal(t, want, deck.Permute(uint64(i)), "deck n(%d)", i)
	}

	century := permute.NewBoundedMixer(100, 0, 0)
	assert.Equal(t, uint64(83), century.Prime())
	wantCentury := []uint64{99, 100, 0, 9, 64, 59}
	for i, want := range wantCentury {
		assert.Equal(t, want, century.Permute(uint64(i)), "century n(%d)", i)
	}

	pow2 := permute.NewBoundedMixer(63, 9, 4)
	wantPow2 := []uint64{26, 52, 48, 33, 36, 63}
	for i, want := range wantPow2 {
		assert.Equal(t, want, pow2.Permute(uint64(i)), "pow2 n(%d)", i)
	}
}

// TestBoundedMixer_Bijection sweeps assorted bounds, including the
// degenerate ones, and requires a complete permutation of [0, max].
func TestBoundedMixer_Bijection(t *testing.T) {
	maxes := []uint64{0, 1, 2, 3, 4, 6, 7, 51, 63, 100, 255, 256, 1000}
	seedPairs := [][2]uint64{{0, 0}, {5, 9}, {7, 3}, {1000, 1}}
	for _, max := range maxes {
		for _, seeds := range seedPairs {
			mx := permute.NewBoundedMixer(max, seeds[0], seeds[1])
			assertBijection(t, mx, max)
		}
	}
}

// assertBijection requires that mx.Permute visits every value of
// [0, max] exactly once over a full index sweep.
func assertBijection(t *testing.T, mx permute.Mixer, max uint64) {
	t.Helper()
	seen := make(map[uint64]struct{}, max+1)
	for i := uint64(0); ; i++ {
		v := mx.Permute(i)
		require.LessOrEqual(t, v, max, "output escaped the domain at index %d", i)
		_, dup := seen[v]
		require.False(t, dup, "duplicate output %d at index %d (max=%d)", v, i, max)
		seen[v] = struct{}{}
		if i == max {
			break
		}
	}
	require.Len(t, seen, int(max+1))
}
