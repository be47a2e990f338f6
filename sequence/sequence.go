package sequence

import (
	"fmt"
	"math"

	"github.com/katalvlaran/randseq/permute"
)

// Sequence is a mutable cursor over one Builder's permutation.
//
// State machine: Active(index) with index ∈ [0, Max], plus Exhausted in
// Terminating mode. A fresh Sequence is Active(0). Next and Prev move
// the cursor; N never does. Once Exhausted, every Next/Prev call keeps
// returning the empty result — the state is terminal until Reset.
//
// A Sequence is not safe for concurrent mutation: advancing the cursor
// is a read-modify-write on private state. Distinct Sequences — even
// over the same Builder — never interfere.
type Sequence struct {
	builder Builder
	mixer   permute.Mixer
	mode    Mode
	index   uint64
	active  bool
}

// Next returns the sequence element at the cursor and advances.
//
// Terminating mode: the second result is false exactly when the cursor
// has already emitted every index of [0, Max]; exhaustion is a terminal
// state, not an error. Wrapping mode: delegates to WrappingNext and the
// second result is always true.
func (s *Sequence) Next() (uint64, bool) {
	if s.mode == Wrapping {
		return s.WrappingNext(), true
	}
	if !s.active {
		return 0, false
	}
	v := s.mixer.Permute(s.index)
	if s.index == s.builder.Max {
		s.active = false
	} else {
		s.index++
	}

	return v, true
}

// Prev returns the sequence element at the cursor and retreats. The
// lower boundary mirrors Next's upper boundary: in Terminating mode the
// element at index 0 is emitted and the cursor exhausts; in Wrapping
// mode the cursor cycles to Max.
func (s *Sequence) Prev() (uint64, bool) {
	if s.mode == Wrapping {
		return s.WrappingPrev(), true
	}
	if !s.active {
		return 0, false
	}
	v := s.mixer.Permute(s.index)
	if s.index == 0 {
		s.active = false
	} else {
		s.index--
	}

	return v, true
}

// WrappingNext returns the element at the cursor and advances modulo
// Max+1. It never exhausts and ignores any prior exhaustion —
// intentionally unbounded production, not a failure mode.
func (s *Sequence) WrappingNext() uint64 {
	v := s.mixer.Permute(s.index)
	if s.index == s.builder.Max {
		s.index = 0
	} else {
		s.index++
	}

	return v
}

// WrappingPrev returns the element at the cursor and retreats modulo
// Max+1, cycling from 0 back to Max.
func (s *Sequence) WrappingPrev() uint64 {
	v := s.mixer.Permute(s.index)
	if s.index == 0 {
		s.index = s.builder.Max
	} else {
		s.index--
	}

	return v
}

// N computes the element at an arbitrary index in O(1), independent of
// the cursor. Pure: it never mutates and never exhausts.
//
// Returns ErrIndexRange when i lies beyond the Builder's Max.
func (s *Sequence) N(i uint64) (uint64, error) {
	if i > s.builder.Max {
		return 0, fmt.Errorf("%w: %d > %d", ErrIndexRange, i, s.builder.Max)
	}

	return s.mixer.Permute(i), nil
}

// Index returns the cursor position, or false when the Sequence is
// exhausted (Terminating mode only; Wrapping cursors are always active).
func (s *Sequence) Index() (uint64, bool) {
	return s.index, s.active
}

// Exhausted reports whether a Terminating traversal has emitted its
// final element. Wrapping sequences never exhaust.
func (s *Sequence) Exhausted() bool {
	return !s.active
}

// Mode returns the traversal mode the Sequence was built with.
func (s *Sequence) Mode() Mode {
	return s.mode
}

// Builder returns the immutable configuration backing this Sequence.
func (s *Sequence) Builder() Builder {
	return s.builder
}

// Prime returns the prime modulus in use — the width table entry for
// full domains, the FindPrime discovery for bounded ones.
func (s *Sequence) Prime() uint64 {
	return s.mixer.Prime()
}

// Period returns the number of distinct values one full cycle emits,
// Max+1. The second result is false when that count does not fit in a
// uint64 (the full 64-bit domains).
func (s *Sequence) Period() (uint64, bool) {
	if s.builder.Max == math.MaxUint64 {
		return 0, false
	}

	return s.builder.Max + 1, true
}

// Reset returns the cursor to Active(0), clearing exhaustion. The
// underlying permutation is untouched: a reset traversal replays the
// identical values.
func (s *Sequence) Reset() {
	s.index = 0
	s.active = true
}
