package feature

import (
	"fmt"
	"sort"

	"github.com/featkit/featkit/core"
)

// Binner maps a continuous value to one of Bins() ordered bins.
type Binner interface {
	// Assign returns the bin index for value, in [0, Bins()).
	Assign(value float64) int
	// Bins returns the number of bins K.
	Bins() int
}

// EqualWidthBinner splits [Min, Max] into NumBins equal-width bins.
// Values below Min clamp to bin 0, values above Max to bin NumBins-1, so
// Assign is total over float64 inputs.
type EqualWidthBinner struct {
	Min     float64
	Max     float64
	NumBins int
}

// NewEqualWidthBinner creates an equal-width binner over [min, max].
func NewEqualWidthBinner(min, max float64, numBins int) (*EqualWidthBinner, error) {
	if numBins < 1 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("equal-width binner: numBins must be >= 1, got %d", numBins))
	}
	if max <= min {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			fmt.Sprintf("equal-width binner: max (%v) must be greater than min (%v)", max, min))
	}
	return &EqualWidthBinner{Min: min, Max: max, NumBins: numBins}, nil
}

func (b *EqualWidthBinner) Bins() int { return b.NumBins }

func (b *EqualWidthBinner) Assign(value float64) int {
	if value <= b.Min {
		return 0
	}
	if value >= b.Max {
		return b.NumBins - 1
	}
	width := (b.Max - b.Min) / float64(b.NumBins)
	bin := int((value - b.Min) / width)
	if bin >= b.NumBins {
		bin = b.NumBins - 1
	}
	return bin
}

// BoundaryBinner bins by explicit ascending boundaries: Assign returns the
// index of the last boundary <= value, and 0 for values below the first
// boundary. K equals the number of boundaries.
type BoundaryBinner struct {
	boundaries []float64
}

// NewBoundaryBinner creates a binner from ascending boundaries.
func NewBoundaryBinner(boundaries []float64) (*BoundaryBinner, error) {
	if len(boundaries) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			"boundary binner: at least one boundary is required")
	}
	if !sort.Float64sAreSorted(boundaries) {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			"boundary binner: boundaries must be ascending")
	}
	own := make([]float64, len(boundaries))
	copy(own, boundaries)
	return &BoundaryBinner{boundaries: own}, nil
}

func (b *BoundaryBinner) Bins() int { return len(b.boundaries) }

func (b *BoundaryBinner) Assign(value float64) int {
	// Index of the first boundary > value; the bin is the one before it.
	idx := sort.SearchFloat64s(b.boundaries, value)
	if idx < len(b.boundaries) && b.boundaries[idx] == value {
		return idx
	}
	if idx == 0 {
		return 0
	}
	return idx - 1
}
