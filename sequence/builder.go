package sequence

import (
	"fmt"
	"io"

	"github.com/katalvlaran/randseq/permute"
)

// Builder is the immutable configuration of one sequence: a width, two
// independent seed integers and an inclusive domain bound. Two Builders
// with equal fields produce bit-identical sequences — that is the
// determinism contract, and the seed pair is the entire persisted state
// (see codec.go).
//
// Builders are plain values: copy them, share them across goroutines,
// spawn as many iterators as needed. Construct with New or Random
// rather than struct literals so that seeds are masked to the width.
type Builder struct {
	// Width selects the integer width and with it the prime and noise
	// tables. It is a construction-time contract: Sequence rejects
	// unknown widths rather than guessing.
	Width permute.Width

	// SeedBase perturbs the permutation input. Every value of the
	// width is a legal seed; no relation to SeedOffset is required.
	SeedBase uint64

	// SeedOffset perturbs the intermediate additive noise.
	SeedOffset uint64

	// Max is the inclusive upper bound of the sequence domain. New
	// sets it to the width maximum; WithMax narrows it.
	Max uint64
}

// New builds a Builder for the full domain of w from an explicit seed
// pair (a fixed test vector, a deserialized value, ...). Seeds wider
// than w are masked into it. An invalid width is carried as-is and
// rejected when an iterator is built.
func New(w permute.Width, seedBase, seedOffset uint64) Builder {
	if w.Valid() {
		seedBase &= w.Max()
		seedOffset &= w.Max()
	}

	return Builder{
		Width:      w,
		SeedBase:   seedBase,
		SeedOffset: seedOffset,
		Max:        w.Max(),
	}
}

// Random builds a Builder by drawing the two seeds from src, an
// injected entropy capability (crypto/rand.Reader, a seeded test
// reader, ...). Exactly two width-sized big-endian draws are consumed.
// Read failures propagate wrapped in ErrEntropy; they are never
// swallowed or retried.
func Random(w permute.Width, src io.Reader) (Builder, error) {
	if !w.Valid() {
		return Builder{}, fmt.Errorf("%w: %d", ErrUnknownWidth, w)
	}
	if src == nil {
		return Builder{}, ErrNilSource
	}

	buf := make([]byte, 2*w.Bits()/8)
	if _, err := io.ReadFull(src, buf); err != nil {
		return Builder{}, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	half := len(buf) / 2

	return New(w, beUint(buf[:half]), beUint(buf[half:])), nil
}

// beUint assembles up to 8 big-endian bytes into a uint64.
func beUint(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}

// WithMax returns a copy of b bounded to the inclusive domain
// [0, max]. The suitable prime for the narrowed domain is discovered
// when an iterator is built. Any max within the width is legal,
// including 0 (a single-element domain); a max beyond the width is
// rejected by Sequence with ErrMaxOverflow.
func (b Builder) WithMax(max uint64) Builder {
	b.Max = max

	return b
}

// Sequence builds an independent iterator over b in the given mode,
// starting at index 0. One Builder may spawn many iterators; each owns
// its cursor and never observes the others.
//
// Errors: ErrUnknownWidth, ErrUnknownMode, ErrMaxOverflow. All are
// construction-time contract violations — a constructed Sequence has
// no failure modes beyond terminating-mode exhaustion.
func (b Builder) Sequence(mode Mode) (*Sequence, error) {
	if !b.Width.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownWidth, b.Width)
	}
	if mode != Terminating && mode != Wrapping {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	if b.Max > b.Width.Max() {
		return nil, fmt.Errorf("%w: max %d does not fit %s", ErrMaxOverflow, b.Max, b.Width)
	}

	var mx permute.Mixer
	if b.Max == b.Width.Max() {
		var err error
		if mx, err = permute.NewMixer(b.Width, b.SeedBase, b.SeedOffset); err != nil {
			return nil, err
		}
	} else {
		mx = permute.NewBoundedMixer(b.Max, b.SeedBase, b.SeedOffset)
	}

	return &Sequence{
		builder: b,
		mixer:   mx,
		mode:    mode,
		active:  true,
	}, nil
}
