package analysis

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteSummary prints a summary table for one dataset
func WriteSummary(out io.Writer, title string, s Summary) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== %s ===\n", title)
	fmt.Fprintf(w, "Mean:\t%.4f\n", s.Mean)
	fmt.Fprintf(w, "Median:\t%.4f\n", s.Median)
	fmt.Fprintf(w, "Std Dev:\t%.4f\n", s.StdDev)
	fmt.Fprintf(w, "Min:\t%.4f\n", s.Min)
	fmt.Fprintf(w, "Max:\t%.4f\n", s.Max)
	fmt.Fprintf(w, "Q1:\t%.4f\n", s.Q1)
	fmt.Fprintf(w, "Q3:\t%.4f\n", s.Q3)
	fmt.Fprintf(w, "Above threshold:\t%.0f\n", s.AboveThreshold)
	fmt.Fprintf(w, "Below threshold:\t%.0f\n", s.BelowThreshold)

	return w.Flush()
}

// WriteDiagnostics prints the distribution-consistency diagnostics
func WriteDiagnostics(out io.Writer, d Diagnostics) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)

	fmt.Fprintf(w, "\nDistribution check:\n")
	fmt.Fprintf(w, "Expected above share:\t%.2f%%\n", round(d.ExpectedAboveShare*100, 2))
	fmt.Fprintf(w, "Observed above share:\t%.2f%%\n", round(d.ObservedAboveShare*100, 2))
	fmt.Fprintf(w, "Mean z-score:\t%.3f\n", d.MeanZScore)

	verdict := "consistent with configured distribution"
	if !d.MeanConsistent {
		verdict = "outside the 95% band of the configured distribution"
	}
	fmt.Fprintf(w, "Mean:\t%s\n", verdict)

	return w.Flush()
}
