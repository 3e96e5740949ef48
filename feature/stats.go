package feature

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/featkit/featkit/core"
)

// Summary holds per-column statistics, typically used to choose bin ranges
// before building an EqualWidthBinner.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
	P25    float64
	P75    float64
	P95    float64
	P99    float64
}

// Summarize computes summary statistics for a column of values.
func Summarize(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, core.NewDomainError(core.ModuleFeature, core.ErrorCodeInvalidArgument,
			"summarize: no values")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	s := &Summary{
		Count: len(sorted),
		Mean:  mean,
		Min:   floats.Min(sorted),
		Max:   floats.Max(sorted),
	}
	if len(sorted) > 1 {
		s.Std = std
	}
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.P75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	s.P99 = stat.Quantile(0.99, stat.Empirical, sorted, nil)
	return s, nil
}

// Binner returns an equal-width binner spanning the observed [Min, Max].
func (s *Summary) Binner(numBins int) (*EqualWidthBinner, error) {
	return NewEqualWidthBinner(s.Min, s.Max, numBins)
}
