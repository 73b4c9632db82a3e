package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// meanZCritical is the two-tailed 5% critical value of the standard normal
const meanZCritical = 1.96

// Diagnostics compares observed statistics against the configured
// generating distribution N(base, std).
type Diagnostics struct {
	ExpectedAboveShare float64 // P(X > threshold) under the configured normal
	ObservedAboveShare float64 // Fraction of generated values above the threshold
	MeanZScore         float64 // z-score of the observed mean under the configured normal
	MeanConsistent     bool    // Whether the observed mean is within the 95% band
}

// Diagnose evaluates how well a generated dataset matches its configured
// distribution. n is the number of generated values.
func Diagnose(base, std, threshold float64, s Summary, n int) Diagnostics {
	d := Diagnostics{}
	if n <= 0 || std <= 0 {
		return d
	}

	dist := distuv.Normal{Mu: base, Sigma: std}
	d.ExpectedAboveShare = 1 - dist.CDF(threshold)
	d.ObservedAboveShare = s.AboveThreshold / float64(n)

	// Standard error of the sample mean
	d.MeanZScore = (s.Mean - base) / (std / math.Sqrt(float64(n)))
	d.MeanConsistent = math.Abs(d.MeanZScore) <= meanZCritical

	return d
}
