package visualization

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"randviz/pkg/config"
	"randviz/pkg/dataset"
)

func testConfig() config.Config {
	seed := int64(42)
	cfg := config.Default()
	cfg.NPoints = 30
	cfg.RandomSeed = &seed
	cfg.FigWidth = 4
	cfg.FigHeight = 2
	return cfg
}

func TestStatisticsNoData(t *testing.T) {
	v := New(testConfig())

	_, err := v.Statistics()
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Statistics() error = %v, want ErrNoData", err)
	}
}

func TestStatisticsAfterGeneration(t *testing.T) {
	v := New(testConfig())
	ds, err := v.GenerateData()
	if err != nil {
		t.Fatalf("GenerateData failed: %v", err)
	}

	s, err := v.Statistics()
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}

	var above float64
	for _, value := range ds.Values {
		if value > v.Config().Threshold {
			above++
		}
	}
	if s.AboveThreshold != above {
		t.Errorf("AboveThreshold = %v, want %v", s.AboveThreshold, above)
	}
}

func TestGenerateDataReplacesDataset(t *testing.T) {
	v := New(testConfig())

	first, err := v.GenerateData()
	if err != nil {
		t.Fatalf("GenerateData failed: %v", err)
	}
	second, err := v.GenerateData()
	if err != nil {
		t.Fatalf("GenerateData failed: %v", err)
	}

	if first == second {
		t.Error("regeneration should replace the dataset, not reuse it")
	}
	if v.Dataset() != second {
		t.Error("visualizer should hold the most recent dataset")
	}
}

func TestGenerateDataInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.NPoints = 0
	v := New(cfg)

	if _, err := v.GenerateData(); !errors.Is(err, dataset.ErrInvalidConfig) {
		t.Fatalf("GenerateData() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSeedDeterminismAcrossVisualizers(t *testing.T) {
	seed := int64(42)
	cfg := config.Default()
	cfg.NPoints = 10
	cfg.RandomSeed = &seed

	first, err := New(cfg).GenerateData()
	if err != nil {
		t.Fatalf("GenerateData failed: %v", err)
	}
	second, err := New(cfg).GenerateData()
	if err != nil {
		t.Fatalf("GenerateData failed: %v", err)
	}

	for i := range first.Values {
		if first.Values[i] != second.Values[i] {
			t.Fatalf("value %d differs: %v != %v", i, first.Values[i], second.Values[i])
		}
	}
}

func TestCreateVisualizationAutoGenerates(t *testing.T) {
	v := New(testConfig())

	fig, err := v.CreateVisualization()
	if err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}
	if fig == nil {
		t.Fatal("CreateVisualization returned nil figure")
	}
	if v.Dataset() == nil {
		t.Error("rendering without data should auto-generate a dataset")
	}
	if v.Figure() != fig {
		t.Error("visualizer should hold the created figure")
	}
}

func TestCreateVisualizationKeepsExistingDataset(t *testing.T) {
	v := New(testConfig())
	ds, err := v.GenerateData()
	if err != nil {
		t.Fatalf("GenerateData failed: %v", err)
	}

	if _, err := v.CreateVisualization(); err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}
	if v.Dataset() != ds {
		t.Error("rendering must not regenerate an existing dataset")
	}
}

func TestCreateVisualizationReplacesFigure(t *testing.T) {
	v := New(testConfig())

	first, err := v.CreateVisualization()
	if err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}
	second, err := v.CreateVisualization()
	if err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}

	if first == second {
		t.Error("a new visualization should replace the prior figure")
	}
	if v.Figure() != second {
		t.Error("visualizer should hold the most recent figure")
	}
}

func TestToBase64NoFigure(t *testing.T) {
	v := New(testConfig())

	if _, err := v.ToBase64(0, ""); !errors.Is(err, ErrNoFigure) {
		t.Fatalf("ToBase64() error = %v, want ErrNoFigure", err)
	}
}

func TestToBase64PNG(t *testing.T) {
	v := New(testConfig())
	if _, err := v.CreateVisualization(); err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}
	defer v.CloseFigure()

	dataURI, err := v.ToBase64(0, "")
	if err != nil {
		t.Fatalf("ToBase64 failed: %v", err)
	}

	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(dataURI, prefix) {
		t.Fatalf("data URI %q missing prefix %q", dataURI[:32], prefix)
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if len(payload) == 0 {
		t.Error("decoded payload is empty")
	}
}

func TestToBase64SVG(t *testing.T) {
	v := New(testConfig())
	if _, err := v.CreateVisualization(); err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}
	defer v.CloseFigure()

	dataURI, err := v.ToBase64(96, FormatSVG)
	if err != nil {
		t.Fatalf("ToBase64 failed: %v", err)
	}
	if !strings.HasPrefix(dataURI, "data:image/svg+xml;base64,") {
		t.Fatalf("unexpected data URI prefix: %q", dataURI[:32])
	}
}

func TestToBase64UnsupportedFormat(t *testing.T) {
	v := New(testConfig())
	if _, err := v.CreateVisualization(); err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}
	defer v.CloseFigure()

	if _, err := v.ToBase64(0, "bmp"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSaveFigureNoFigure(t *testing.T) {
	v := New(testConfig())

	if err := v.SaveFigure("test.png"); !errors.Is(err, ErrNoFigure) {
		t.Fatalf("SaveFigure() error = %v, want ErrNoFigure", err)
	}
}

func TestSaveFigure(t *testing.T) {
	v := New(testConfig())
	if _, err := v.CreateVisualization(); err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}
	defer v.CloseFigure()

	path := filepath.Join(t.TempDir(), "test_figure.png")
	if err := v.SaveFigure(path); err != nil {
		t.Fatalf("SaveFigure failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved figure missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved figure is empty")
	}
}

func TestCloseFigureIdempotent(t *testing.T) {
	v := New(testConfig())
	if _, err := v.CreateVisualization(); err != nil {
		t.Fatalf("CreateVisualization failed: %v", err)
	}

	v.CloseFigure()
	if v.Figure() != nil {
		t.Error("figure should be released after CloseFigure")
	}

	// Calling again without a figure is a no-op
	v.CloseFigure()
	if v.Figure() != nil {
		t.Error("figure should stay released")
	}
}

func TestWithClosesFigureOnSuccess(t *testing.T) {
	var scoped *Visualizer

	err := With(testConfig(), func(v *Visualizer) error {
		scoped = v
		if _, err := v.CreateVisualization(); err != nil {
			return err
		}
		if v.Figure() == nil {
			t.Error("figure should exist inside the scope")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("With failed: %v", err)
	}

	if scoped.Figure() != nil {
		t.Error("figure should be released when the scope exits")
	}
}

func TestWithClosesFigureOnError(t *testing.T) {
	var scoped *Visualizer
	wantErr := fmt.Errorf("render pipeline broke")

	err := With(testConfig(), func(v *Visualizer) error {
		scoped = v
		if _, err := v.CreateVisualization(); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("With() error = %v, want %v", err, wantErr)
	}

	if scoped.Figure() != nil {
		t.Error("figure should be released on the error path too")
	}
}

func TestQuickVisualize(t *testing.T) {
	v, err := QuickVisualize(
		WithPoints(30),
		WithBaseValue(100.0),
		WithNoiseStd(2.0),
		WithSeed(7),
		WithThreshold(98.0),
		WithFigSize(4, 2),
		WithTitle("Quick"),
		WithColorScheme("dark"),
	)
	if err != nil {
		t.Fatalf("QuickVisualize failed: %v", err)
	}
	defer v.CloseFigure()

	cfg := v.Config()
	if cfg.NPoints != 30 || cfg.BaseValue != 100.0 || cfg.Threshold != 98.0 {
		t.Errorf("options not applied: %+v", cfg)
	}
	if cfg.ColorScheme != "dark" {
		t.Errorf("ColorScheme = %q, want dark", cfg.ColorScheme)
	}
	if v.Dataset() == nil {
		t.Error("QuickVisualize should generate data")
	}
	if v.Figure() == nil {
		t.Error("QuickVisualize should leave the figure open for the caller")
	}
}

func TestQuickVisualizeInvalid(t *testing.T) {
	if _, err := QuickVisualize(WithPoints(0)); err == nil {
		t.Error("expected error for non-positive point count")
	}
}
