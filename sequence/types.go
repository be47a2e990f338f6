// Package sequence defines traversal modes and sentinel errors for the
// sequence subpackage of github.com/katalvlaran/randseq.
package sequence

import "errors"

// Sentinel errors for sequence construction and access.
var (
	// ErrUnknownWidth is returned when a Builder carries a width
	// outside the supported enumeration.
	ErrUnknownWidth = errors.New("sequence: unknown width")

	// ErrUnknownMode is returned when an iteration Mode is neither
	// Terminating nor Wrapping.
	ErrUnknownMode = errors.New("sequence: unknown iteration mode")

	// ErrMaxOverflow is returned when a Builder's Max does not fit its
	// declared width.
	ErrMaxOverflow = errors.New("sequence: max exceeds width range")

	// ErrIndexRange is returned by N for an index beyond Max.
	ErrIndexRange = errors.New("sequence: index outside sequence domain")

	// ErrNilSource is returned by Random when no entropy reader is supplied.
	ErrNilSource = errors.New("sequence: entropy source is nil")

	// ErrEntropy is returned when the injected entropy source fails;
	// the underlying read error is attached.
	ErrEntropy = errors.New("sequence: entropy source read failed")

	// ErrDecode is returned when serialized configuration bytes cannot
	// be decoded; the underlying codec error is attached.
	ErrDecode = errors.New("sequence: configuration decode failed")
)

// Mode selects the traversal behavior of a Sequence.
type Mode int

const (
	// Terminating visits every index of [0, Max] once, then reports
	// exhaustion: the empty result is an expected terminal condition,
	// not an error.
	Terminating Mode = iota
	// Wrapping cycles through the full range indefinitely with period
	// Max+1; it never exhausts.
	Wrapping
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Terminating:
		return "terminating"
	case Wrapping:
		return "wrapping"
	default:
		return "invalid"
	}
}
