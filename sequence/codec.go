package sequence

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/randseq/permute"
	"gopkg.in/yaml.v3"
)

// builderDTO is the wire shape of a Builder: the width tag, the seed
// pair, and the max only when it narrows the domain. The seed pair is
// the entire reconstructible state — no derived field (prime, noise,
// intermediates) is ever persisted.
type builderDTO struct {
	Width      uint8   `yaml:"width" json:"width"`
	SeedBase   uint64  `yaml:"seed_base" json:"seed_base"`
	SeedOffset uint64  `yaml:"seed_offset" json:"seed_offset"`
	Max        *uint64 `yaml:"max,omitempty" json:"max,omitempty"`
}

// wire converts a Builder to its serialized shape, omitting Max when it
// equals the width maximum (the default domain).
func (b Builder) wire() builderDTO {
	dto := builderDTO{
		Width:      uint8(b.Width),
		SeedBase:   b.SeedBase,
		SeedOffset: b.SeedOffset,
	}
	if b.Width.Valid() && b.Max != b.Width.Max() {
		max := b.Max
		dto.Max = &max
	}

	return dto
}

// restore validates a decoded wire shape and rebuilds the Builder:
// unknown widths and oversized maxes are construction-time contract
// violations, seeds are masked into the width.
func (dto builderDTO) restore() (Builder, error) {
	w := permute.Width(dto.Width)
	if !w.Valid() {
		return Builder{}, fmt.Errorf("%w: %d", ErrUnknownWidth, dto.Width)
	}
	b := New(w, dto.SeedBase, dto.SeedOffset)
	if dto.Max != nil {
		b = b.WithMax(*dto.Max)
		if b.Max > w.Max() {
			return Builder{}, fmt.Errorf("%w: max %d does not fit %s", ErrMaxOverflow, b.Max, w)
		}
	}

	return b, nil
}

// ToYAML serializes the Builder for persistence or transport. The
// output is exactly the width, seed_base and seed_offset (plus max for
// narrowed domains) — enough to reconstruct an identical sequence.
func (b Builder) ToYAML() ([]byte, error) {
	return yaml.Marshal(b.wire())
}

// ToJSON is ToYAML's JSON twin, for callers already speaking JSON.
func (b Builder) ToJSON() ([]byte, error) {
	return json.Marshal(b.wire())
}

// FromYAML reconstructs a Builder from ToYAML output. Malformed bytes
// surface as ErrDecode with the cause attached; invalid field values as
// ErrUnknownWidth / ErrMaxOverflow. Failures are never silently
// repaired.
func FromYAML(data []byte) (Builder, error) {
	var dto builderDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Builder{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return dto.restore()
}

// FromJSON reconstructs a Builder from ToJSON output.
func FromJSON(data []byte) (Builder, error) {
	var dto builderDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return Builder{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return dto.restore()
}
