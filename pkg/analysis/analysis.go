package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// ErrNoValues indicates a summary was requested over an empty value sequence
var ErrNoValues = errors.New("no values to summarize")

// Summary contains descriptive statistics for one dataset
type Summary struct {
	Mean           float64
	Median         float64
	StdDev         float64
	Min            float64
	Max            float64
	Q1             float64
	Q3             float64
	AboveThreshold float64 // Count of values strictly above the threshold
	BelowThreshold float64 // Count of values strictly below the threshold
}

// Summarize computes descriptive statistics over values using the given
// threshold for the above/below counts. Values equal to the threshold are
// counted on neither side.
func Summarize(values []float64, threshold float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoValues
	}
	if len(values) == 1 {
		return singleValueSummary(values[0], threshold), nil
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return Summary{}, fmt.Errorf("mean: %w", err)
	}
	median, err := stats.Median(values)
	if err != nil {
		return Summary{}, fmt.Errorf("median: %w", err)
	}
	stdDev, err := stats.StandardDeviation(values)
	if err != nil {
		return Summary{}, fmt.Errorf("standard deviation: %w", err)
	}
	min, err := stats.Min(values)
	if err != nil {
		return Summary{}, fmt.Errorf("min: %w", err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return Summary{}, fmt.Errorf("max: %w", err)
	}
	quartiles, err := stats.Quartile(values)
	if err != nil {
		return Summary{}, fmt.Errorf("quartiles: %w", err)
	}

	above, below := thresholdCounts(values, threshold)

	return Summary{
		Mean:           mean,
		Median:         median,
		StdDev:         stdDev,
		Min:            min,
		Max:            max,
		Q1:             quartiles.Q1,
		Q3:             quartiles.Q3,
		AboveThreshold: above,
		BelowThreshold: below,
	}, nil
}

// singleValueSummary covers the degenerate one-point dataset, where every
// positional statistic collapses to the value itself
func singleValueSummary(v, threshold float64) Summary {
	above, below := thresholdCounts([]float64{v}, threshold)
	return Summary{
		Mean:           v,
		Median:         v,
		StdDev:         0,
		Min:            v,
		Max:            v,
		Q1:             v,
		Q3:             v,
		AboveThreshold: above,
		BelowThreshold: below,
	}
}

// thresholdCounts counts values strictly above and strictly below the
// threshold; values equal to it land on neither side
func thresholdCounts(values []float64, threshold float64) (above, below float64) {
	for _, v := range values {
		switch {
		case v > threshold:
			above++
		case v < threshold:
			below++
		}
	}
	return
}

// Map projects the summary to a plain name/value mapping
func (s Summary) Map() map[string]float64 {
	return map[string]float64{
		"mean":            s.Mean,
		"median":          s.Median,
		"std":             s.StdDev,
		"min":             s.Min,
		"max":             s.Max,
		"q1":              s.Q1,
		"q3":              s.Q3,
		"above_threshold": s.AboveThreshold,
		"below_threshold": s.BelowThreshold,
	}
}

// round trims a value for display purposes
func round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
