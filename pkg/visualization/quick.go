package visualization

import "randviz/pkg/config"

// Option overrides one configuration field for QuickVisualize
type Option func(*config.Config)

// WithPoints sets the number of points to generate
func WithPoints(n int) Option {
	return func(c *config.Config) { c.NPoints = n }
}

// WithBaseValue sets the value the series is centered on
func WithBaseValue(v float64) Option {
	return func(c *config.Config) { c.BaseValue = v }
}

// WithNoiseStd sets the noise standard deviation
func WithNoiseStd(v float64) Option {
	return func(c *config.Config) { c.NoiseStd = v }
}

// WithSeed fixes the random seed for reproducible output
func WithSeed(seed int64) Option {
	return func(c *config.Config) { c.RandomSeed = &seed }
}

// WithThreshold sets the highlighting threshold
func WithThreshold(v float64) Option {
	return func(c *config.Config) { c.Threshold = v }
}

// WithFigSize sets the figure size in inches
func WithFigSize(width, height float64) Option {
	return func(c *config.Config) {
		c.FigWidth = width
		c.FigHeight = height
	}
}

// WithTitle sets the chart title
func WithTitle(title string) Option {
	return func(c *config.Config) { c.Title = title }
}

// WithColorScheme selects the palette
func WithColorScheme(scheme string) Option {
	return func(c *config.Config) { c.ColorScheme = scheme }
}

// QuickVisualize builds a configuration from the default plus the given
// overrides, generates data and renders a figure in one call. The returned
// visualizer still holds its figure open; cleanup belongs to the caller.
func QuickVisualize(opts ...Option) (*Visualizer, error) {
	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}

	v := New(cfg)
	if _, err := v.GenerateData(); err != nil {
		return nil, err
	}
	if _, err := v.CreateVisualization(); err != nil {
		return nil, err
	}
	return v, nil
}
