package config

// Config holds the parameters controlling data generation and chart rendering
type Config struct {
	NPoints     int     // Number of data points to generate
	BaseValue   float64 // Value the series is centered on
	NoiseStd    float64 // Standard deviation of the gaussian noise
	RandomSeed  *int64  // Optional seed; nil means time-seeded
	FigWidth    float64 // Figure width in inches
	FigHeight   float64 // Figure height in inches
	Threshold   float64 // Value used for area filling and above/below counts
	Title       string  // Chart title
	ColorScheme string  // Palette name: "default" or "dark"
	XLabel      string  // X-axis label
	YLabel      string  // Y-axis label
}

// RunConfig holds runtime configuration for a CLI invocation
type RunConfig struct {
	Preset       string
	Out          string
	EmitBase64   bool
	EmitMarkdown bool
	DPI          float64
	Format       string
	ShowHelp     bool
}

// Default returns a configuration with sensible defaults
func Default() Config {
	return Config{
		NPoints:     100,
		BaseValue:   200.0,
		NoiseStd:    1.0,
		RandomSeed:  nil,
		FigWidth:    10,
		FigHeight:   6,
		Threshold:   195.0,
		Title:       "Random Data Visualization",
		ColorScheme: "default",
		XLabel:      "Index",
		YLabel:      "Value",
	}
}

// ToMap projects the configuration to a plain key/value mapping.
// The projection is lossless: FromMap(cfg.ToMap()) reproduces cfg.
func (c Config) ToMap() map[string]any {
	m := map[string]any{
		"n_points":     c.NPoints,
		"base_value":   c.BaseValue,
		"noise_std":    c.NoiseStd,
		"fig_width":    c.FigWidth,
		"fig_height":   c.FigHeight,
		"threshold":    c.Threshold,
		"title":        c.Title,
		"color_scheme": c.ColorScheme,
		"x_label":      c.XLabel,
		"y_label":      c.YLabel,
	}
	if c.RandomSeed != nil {
		m["random_seed"] = *c.RandomSeed
	}
	return m
}

// FromMap reconstructs a configuration from a key/value mapping. Missing keys
// keep their defaults and unrecognized keys are ignored. Numeric values are
// accepted as int, int64 or float64 so mappings decoded from JSON work too.
func FromMap(m map[string]any) Config {
	c := Default()
	for key, value := range m {
		switch key {
		case "n_points":
			if n, ok := asInt(value); ok {
				c.NPoints = n
			}
		case "base_value":
			if f, ok := asFloat(value); ok {
				c.BaseValue = f
			}
		case "noise_std":
			if f, ok := asFloat(value); ok {
				c.NoiseStd = f
			}
		case "random_seed":
			if n, ok := asInt64(value); ok {
				seed := n
				c.RandomSeed = &seed
			}
		case "fig_width":
			if f, ok := asFloat(value); ok {
				c.FigWidth = f
			}
		case "fig_height":
			if f, ok := asFloat(value); ok {
				c.FigHeight = f
			}
		case "threshold":
			if f, ok := asFloat(value); ok {
				c.Threshold = f
			}
		case "title":
			if s, ok := value.(string); ok {
				c.Title = s
			}
		case "color_scheme":
			if s, ok := value.(string); ok {
				c.ColorScheme = s
			}
		case "x_label":
			if s, ok := value.(string); ok {
				c.XLabel = s
			}
		case "y_label":
			if s, ok := value.(string); ok {
				c.YLabel = s
			}
		}
	}
	return c
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
