package visualization

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// DefaultDPI is the export resolution used when the caller does not
// specify one.
const DefaultDPI = 150.0

// Supported export formats
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var renderProviders = map[string]chart.RendererProvider{
	FormatPNG: chart.PNG,
	FormatSVG: chart.SVG,
}

var mimeTypes = map[string]string{
	FormatPNG: "image/png",
	FormatSVG: "image/svg+xml",
}

// MimeType returns the mime type for a supported export format
func MimeType(format string) (string, bool) {
	mime, ok := mimeTypes[format]
	return mime, ok
}

// Figure is an assembled chart awaiting serialization. Pixel dimensions are
// resolved at render time from the configured size in inches and the
// requested DPI, so one figure can be exported at several resolutions.
type Figure struct {
	chart    *chart.Chart
	widthIn  float64
	heightIn float64
}

// Chart exposes the underlying chart object
func (f *Figure) Chart() *chart.Chart {
	return f.chart
}

// Render serializes the figure to w in the given format at the given DPI.
// A non-positive dpi falls back to DefaultDPI.
func (f *Figure) Render(w io.Writer, dpi float64, format string) error {
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	provider, ok := renderProviders[format]
	if !ok {
		return fmt.Errorf("unsupported image format %q", format)
	}

	f.chart.Width = int(f.widthIn * dpi)
	f.chart.Height = int(f.heightIn * dpi)
	f.chart.DPI = dpi

	if err := f.chart.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
