package analysis

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil, 0)
	assert.ErrorIs(t, err, ErrNoValues)
}

func TestSummarizeKnownValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	s, err := Summarize(values, 3)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, s.Mean, 1e-9)
	assert.InDelta(t, 3.0, s.Median, 1e-9)
	assert.InDelta(t, 1.0, s.Min, 1e-9)
	assert.InDelta(t, 5.0, s.Max, 1e-9)
	// Population standard deviation of 1..5
	assert.InDelta(t, math.Sqrt(2), s.StdDev, 1e-9)

	// Quartiles must bracket the median regardless of interpolation method
	assert.LessOrEqual(t, s.Min, s.Q1)
	assert.Less(t, s.Q1, s.Median)
	assert.Greater(t, s.Q3, s.Median)
	assert.GreaterOrEqual(t, s.Max, s.Q3)
}

func TestSummarizeSingleValue(t *testing.T) {
	s, err := Summarize([]float64{7}, 5)
	require.NoError(t, err)

	assert.Equal(t, 7.0, s.Mean)
	assert.Equal(t, 7.0, s.Median)
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 7.0, s.Q1)
	assert.Equal(t, 7.0, s.Q3)
	assert.Equal(t, 1.0, s.AboveThreshold)
	assert.Equal(t, 0.0, s.BelowThreshold)
}

func TestSummarizeThresholdStrict(t *testing.T) {
	// Values equal to the threshold count on neither side
	values := []float64{1, 2, 2, 3}

	s, err := Summarize(values, 2)
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.AboveThreshold)
	assert.Equal(t, 1.0, s.BelowThreshold)
}

func TestSummaryMapKeys(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3, 4}, 2.5)
	require.NoError(t, err)

	m := s.Map()
	expected := []string{
		"mean", "median", "std", "min", "max",
		"q1", "q3", "above_threshold", "below_threshold",
	}
	assert.Len(t, m, len(expected))
	for _, key := range expected {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, 2.0, m["above_threshold"])
}

func TestDiagnoseSymmetric(t *testing.T) {
	s := Summary{Mean: 0, AboveThreshold: 5}

	d := Diagnose(0, 1, 0, s, 10)

	assert.InDelta(t, 0.5, d.ExpectedAboveShare, 1e-9)
	assert.InDelta(t, 0.5, d.ObservedAboveShare, 1e-9)
	assert.InDelta(t, 0.0, d.MeanZScore, 1e-9)
	assert.True(t, d.MeanConsistent)
}

func TestDiagnoseShiftedMean(t *testing.T) {
	s := Summary{Mean: 1.0}

	d := Diagnose(0, 1, 0, s, 100)

	// Mean of 1.0 over 100 samples of N(0,1) sits 10 standard errors out
	assert.InDelta(t, 10.0, d.MeanZScore, 1e-9)
	assert.False(t, d.MeanConsistent)
}

func TestDiagnoseDegenerateInput(t *testing.T) {
	assert.Equal(t, Diagnostics{}, Diagnose(0, 1, 0, Summary{}, 0))
	assert.Equal(t, Diagnostics{}, Diagnose(0, 0, 0, Summary{}, 10))
}

func TestWriteSummary(t *testing.T) {
	s, err := Summarize([]float64{1, 2, 3}, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, "Test Series", s))

	out := buf.String()
	assert.Contains(t, out, "Test Series")
	assert.Contains(t, out, "Mean:")
	assert.Contains(t, out, "Above threshold:")
}

func TestWriteDiagnostics(t *testing.T) {
	d := Diagnose(0, 1, 0, Summary{Mean: 0, AboveThreshold: 5}, 10)

	var buf bytes.Buffer
	require.NoError(t, WriteDiagnostics(&buf, d))

	out := buf.String()
	assert.Contains(t, out, "Expected above share:")
	assert.Contains(t, out, "Mean z-score:")
}
