package visualization

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"randviz/pkg/analysis"
	"randviz/pkg/config"
	"randviz/pkg/dataset"
)

// buildChart assembles the single-axis chart: the value line, the band
// filled where the curve exceeds the threshold, a dashed threshold line,
// mean/std annotations, grid and a thin legend.
func buildChart(cfg config.Config, ds *dataset.Dataset, s analysis.Summary) *chart.Chart {
	p := PaletteFor(cfg.ColorScheme)

	xValues := make([]float64, ds.Len())
	for i, idx := range ds.Indices {
		xValues[i] = float64(idx)
	}

	thresholdValues := make([]float64, ds.Len())
	for i := range thresholdValues {
		thresholdValues[i] = cfg.Threshold
	}

	// Stack the annotation labels below the series maximum
	span := s.Max - s.Min
	if span <= 0 {
		span = 1
	}

	gridStyle := chart.Style{
		StrokeColor:     p.Grid,
		StrokeWidth:     0.5,
		StrokeDashArray: []float64{2, 2},
	}

	graph := &chart.Chart{
		Title:      cfg.Title,
		TitleStyle: chart.Style{FontSize: 14, FontColor: p.Text},
		DPI:        DefaultDPI,
		Background: chart.Style{
			FillColor: p.Background,
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Canvas: chart.Style{FillColor: p.Background},
		XAxis: chart.XAxis{
			Name:           cfg.XLabel,
			NameStyle:      chart.Style{FontSize: 11, FontColor: p.Text},
			Style:          chart.Style{FontColor: p.Text},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           cfg.YLabel,
			NameStyle:      chart.Style{FontSize: 11, FontColor: p.Text},
			Style:          chart.Style{FontColor: p.Text},
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			&thresholdBandSeries{
				name:      fmt.Sprintf("Above %.1f", cfg.Threshold),
				threshold: cfg.Threshold,
				xvalues:   xValues,
				yvalues:   ds.Values,
				style: chart.Style{
					StrokeColor: p.Fill,
					StrokeWidth: 1,
					FillColor:   p.Fill,
				},
			},
			chart.ContinuousSeries{
				Name:    "Data Series",
				XValues: xValues,
				YValues: ds.Values,
				Style: chart.Style{
					StrokeColor: p.Line,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    fmt.Sprintf("Threshold (%.1f)", cfg.Threshold),
				XValues: xValues,
				YValues: thresholdValues,
				Style: chart.Style{
					StrokeColor:     p.Threshold,
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{5, 5},
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{XValue: xValues[0], YValue: s.Max, Label: fmt.Sprintf("Mean: %.2f", s.Mean)},
					{XValue: xValues[0], YValue: s.Max - 0.08*span, Label: fmt.Sprintf("Std: %.2f", s.StdDev)},
				},
				Style: chart.Style{
					FontSize:    9,
					FontColor:   p.Text,
					FillColor:   p.Annotation,
					StrokeColor: p.Grid,
				},
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendThin(graph),
	}

	return graph
}

// thresholdBandSeries fills the region between the curve and the threshold,
// but only where the curve exceeds it. It satisfies go-chart's bounded
// values contract so Draw.BoundedSeries does the polygon work; segments at
// or below the threshold collapse to zero height.
type thresholdBandSeries struct {
	name      string
	style     chart.Style
	threshold float64
	xvalues   []float64
	yvalues   []float64
}

func (s *thresholdBandSeries) GetName() string {
	return s.name
}

func (s *thresholdBandSeries) GetStyle() chart.Style {
	return s.style
}

func (s *thresholdBandSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (s *thresholdBandSeries) Len() int {
	return len(s.yvalues)
}

// GetBoundedValues returns the band bounds at an index
func (s *thresholdBandSeries) GetBoundedValues(index int) (x, y1, y2 float64) {
	x = s.xvalues[index]
	y2 = s.threshold
	if y := s.yvalues[index]; y > s.threshold {
		y1 = y
	} else {
		y1 = s.threshold
	}
	return
}

// GetBoundedLastValues returns the band bounds at the final index
func (s *thresholdBandSeries) GetBoundedLastValues() (x, y1, y2 float64) {
	return s.GetBoundedValues(len(s.yvalues) - 1)
}

func (s *thresholdBandSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := s.style.InheritFrom(defaults)
	chart.Draw.BoundedSeries(r, canvasBox, xrange, yrange, style, s)
}

func (s *thresholdBandSeries) Validate() error {
	if len(s.xvalues) == 0 {
		return fmt.Errorf("threshold band series must have values")
	}
	if len(s.xvalues) != len(s.yvalues) {
		return fmt.Errorf("threshold band series must have equal length x and y values")
	}
	return nil
}
