package visualization

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"randviz/pkg/analysis"
	"randviz/pkg/config"
	"randviz/pkg/dataset"
)

var (
	// ErrNoData indicates statistics were requested before any generation
	ErrNoData = errors.New("no data available")
	// ErrNoFigure indicates export was requested before any visualization
	ErrNoFigure = errors.New("no figure available")
)

// Visualizer ties generation, statistics, rendering and export together.
// Each instance owns exactly one dataset and at most one figure at a time;
// both are replaced, never mutated, by its method calls.
type Visualizer struct {
	cfg    config.Config
	data   *dataset.Dataset
	figure *Figure
}

// New creates a visualizer with the given configuration
func New(cfg config.Config) *Visualizer {
	return &Visualizer{cfg: cfg}
}

// NewDefault creates a visualizer with the default configuration
func NewDefault() *Visualizer {
	return New(config.Default())
}

// Config returns the visualizer's configuration
func (v *Visualizer) Config() config.Config {
	return v.cfg
}

// Dataset returns the current dataset, or nil before any generation
func (v *Visualizer) Dataset() *dataset.Dataset {
	return v.data
}

// Figure returns the current figure, or nil before any visualization
func (v *Visualizer) Figure() *Figure {
	return v.figure
}

// GenerateData produces a fresh dataset from the configuration, discarding
// any prior dataset
func (v *Visualizer) GenerateData() (*dataset.Dataset, error) {
	ds, err := dataset.NewGenerator(v.cfg).Generate()
	if err != nil {
		return nil, err
	}
	v.data = ds
	return ds, nil
}

// Statistics computes descriptive statistics over the current dataset using
// the configured threshold. Results are recomputed on every call.
func (v *Visualizer) Statistics() (analysis.Summary, error) {
	if v.data == nil {
		return analysis.Summary{}, ErrNoData
	}
	return analysis.Summarize(v.data.Values, v.cfg.Threshold)
}

// CreateVisualization renders the current dataset into a new figure,
// releasing any figure held before. When no dataset exists yet one is
// generated first, matching the reference flow where a chart can be
// requested without prior explicit generation.
func (v *Visualizer) CreateVisualization() (*Figure, error) {
	if v.data == nil {
		if _, err := v.GenerateData(); err != nil {
			return nil, err
		}
	}

	summary, err := analysis.Summarize(v.data.Values, v.cfg.Threshold)
	if err != nil {
		return nil, err
	}

	v.CloseFigure()
	v.figure = &Figure{
		chart:    buildChart(v.cfg, v.data, summary),
		widthIn:  v.cfg.FigWidth,
		heightIn: v.cfg.FigHeight,
	}
	return v.figure, nil
}

// ToBase64 serializes the current figure and returns it as a data URI.
// A non-positive dpi falls back to DefaultDPI, an empty format to PNG.
func (v *Visualizer) ToBase64(dpi float64, format string) (string, error) {
	if v.figure == nil {
		return "", ErrNoFigure
	}
	if format == "" {
		format = FormatPNG
	}

	mime, ok := MimeType(format)
	if !ok {
		return "", fmt.Errorf("unsupported image format %q", format)
	}

	var buf bytes.Buffer
	if err := v.figure.Render(&buf, dpi, format); err != nil {
		return "", err
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// SaveFigure writes the current figure to path. The format is inferred from
// the file extension, defaulting to PNG.
func (v *Visualizer) SaveFigure(path string) error {
	if v.figure == nil {
		return ErrNoFigure
	}

	format := FormatPNG
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		format = FormatSVG
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return v.figure.Render(file, DefaultDPI, format)
}

// CloseFigure releases the current figure. Safe to call any number of
// times; calls without a figure are no-ops.
func (v *Visualizer) CloseFigure() {
	v.figure = nil
}

// With runs fn with a visualizer scoped to the call: the figure is released
// on every exit path, whether fn succeeds, fails or panics.
func With(cfg config.Config, fn func(*Visualizer) error) error {
	v := New(cfg)
	defer v.CloseFigure()
	return fn(v)
}
