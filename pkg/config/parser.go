package config

import (
	"flag"
	"fmt"
)

// Parser handles command-line flag parsing
type Parser struct {
	config    *Config
	runConfig *RunConfig
	seed      int64
	flagSet   *flag.FlagSet
}

// NewParser creates a new configuration parser
func NewParser() *Parser {
	config := Default()
	runConfig := &RunConfig{
		Preset:       "default",
		Out:          "visualization.png",
		EmitBase64:   false,
		EmitMarkdown: false,
		DPI:          150,
		Format:       "png",
		ShowHelp:     false,
	}

	flagSet := flag.NewFlagSet("randviz", flag.ExitOnError)

	return &Parser{
		config:    &config,
		runConfig: runConfig,
		flagSet:   flagSet,
	}
}

// RegisterFlags registers all command-line flags
func (p *Parser) RegisterFlags() {
	// Generation flags
	p.flagSet.IntVar(&p.config.NPoints, "points", p.config.NPoints, "Number of data points to generate")
	p.flagSet.Float64Var(&p.config.BaseValue, "base", p.config.BaseValue, "Base value the series is centered on")
	p.flagSet.Float64Var(&p.config.NoiseStd, "noise", p.config.NoiseStd, "Standard deviation of the gaussian noise")
	p.flagSet.Int64Var(&p.seed, "seed", 0, "Random seed for reproducible output (time-seeded when omitted)")

	// Rendering flags
	p.flagSet.Float64Var(&p.config.FigWidth, "width", p.config.FigWidth, "Figure width in inches")
	p.flagSet.Float64Var(&p.config.FigHeight, "height", p.config.FigHeight, "Figure height in inches")
	p.flagSet.Float64Var(&p.config.Threshold, "threshold", p.config.Threshold, "Threshold for area filling and above/below counts")
	p.flagSet.StringVar(&p.config.Title, "title", p.config.Title, "Chart title")
	p.flagSet.StringVar(&p.config.ColorScheme, "color-scheme", p.config.ColorScheme, "Color scheme: default or dark")

	// Run control flags
	p.flagSet.StringVar(&p.runConfig.Preset, "preset", p.runConfig.Preset, "Named preset configuration to start from")
	p.flagSet.StringVar(&p.runConfig.Out, "out", p.runConfig.Out, "Output image path (empty to skip saving)")
	p.flagSet.BoolVar(&p.runConfig.EmitBase64, "base64", p.runConfig.EmitBase64, "Print the chart as a base64 data URI")
	p.flagSet.BoolVar(&p.runConfig.EmitMarkdown, "markdown", p.runConfig.EmitMarkdown, "Print the chart as an inline markdown image")
	p.flagSet.Float64Var(&p.runConfig.DPI, "dpi", p.runConfig.DPI, "Export resolution in dots per inch")
	p.flagSet.StringVar(&p.runConfig.Format, "format", p.runConfig.Format, "Export image format: png or svg")
	p.flagSet.BoolVar(&p.runConfig.ShowHelp, "help", p.runConfig.ShowHelp, "Show detailed help and parameter explanations")
}

// Parse parses command-line arguments and returns configuration
func (p *Parser) Parse(args []string) (*Config, *RunConfig, error) {
	p.RegisterFlags()

	if err := p.flagSet.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// The seed flag only takes effect when explicitly provided, so that an
	// omitted flag still means time-seeded generation.
	p.flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seed := p.seed
			p.config.RandomSeed = &seed
		}
	})

	if p.runConfig.ShowHelp {
		p.ShowDetailedHelp()
		return p.config, p.runConfig, nil
	}

	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return p.config, p.runConfig, nil
}

// ApplyExplicit overlays the flags the user explicitly set onto a base
// configuration. Used when a preset supplies the starting point but
// individual flags should still win.
func (p *Parser) ApplyExplicit(base Config) Config {
	merged := base

	p.flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "points":
			merged.NPoints = p.config.NPoints
		case "base":
			merged.BaseValue = p.config.BaseValue
		case "noise":
			merged.NoiseStd = p.config.NoiseStd
		case "seed":
			seed := p.seed
			merged.RandomSeed = &seed
		case "width":
			merged.FigWidth = p.config.FigWidth
		case "height":
			merged.FigHeight = p.config.FigHeight
		case "threshold":
			merged.Threshold = p.config.Threshold
		case "title":
			merged.Title = p.config.Title
		case "color-scheme":
			merged.ColorScheme = p.config.ColorScheme
		}
	})

	return merged
}

// Validate validates the configuration parameters
func (p *Parser) Validate() error {
	c := p.config
	r := p.runConfig

	if c.NPoints <= 0 {
		return fmt.Errorf("points (%d) must be positive", c.NPoints)
	}

	if c.NoiseStd <= 0 {
		return fmt.Errorf("noise (%.3f) must be positive", c.NoiseStd)
	}

	if c.FigWidth <= 0 || c.FigHeight <= 0 {
		return fmt.Errorf("figure size (%.1fx%.1f) must be positive", c.FigWidth, c.FigHeight)
	}

	if c.ColorScheme != "default" && c.ColorScheme != "dark" {
		return fmt.Errorf("invalid color scheme '%s', must be one of: default, dark", c.ColorScheme)
	}

	if r.DPI <= 0 {
		return fmt.Errorf("dpi (%.1f) must be positive", r.DPI)
	}

	validFormats := []string{"png", "svg"}
	isValid := false
	for _, valid := range validFormats {
		if r.Format == valid {
			isValid = true
			break
		}
	}
	if !isValid {
		return fmt.Errorf("invalid format '%s', must be one of: %v", r.Format, validFormats)
	}

	return nil
}

// ShowDetailedHelp displays comprehensive help information
func (p *Parser) ShowDetailedHelp() {
	fmt.Println("randviz - Synthetic Noisy Time-Series Visualization")
	fmt.Println("================================================================================")
	fmt.Println()

	fmt.Println("OVERVIEW:")
	fmt.Println("  Generates a noisy series around a base value, renders it as a PNG/SVG line")
	fmt.Println("  chart with threshold highlighting, and exports it to a file or as a base64")
	fmt.Println("  data URI suitable for inline embedding in markdown.")
	fmt.Println()

	fmt.Println("GENERATION PARAMETERS:")
	fmt.Println("  -points=100            Number of data points to generate")
	fmt.Println("  -base=200.0            Base value the series is centered on")
	fmt.Println("  -noise=1.0             Standard deviation of the gaussian noise")
	fmt.Println("  -seed=42               Random seed; identical seeds reproduce the series")
	fmt.Println("                         exactly. Omit for time-seeded output.")
	fmt.Println()

	fmt.Println("RENDERING PARAMETERS:")
	fmt.Println("  -width=10 -height=6    Figure size in inches")
	fmt.Println("  -threshold=195.0       Fill the area where the curve exceeds this value")
	fmt.Println("  -title=...             Chart title")
	fmt.Println("  -color-scheme=default  Palette: default or dark")
	fmt.Println()

	fmt.Println("OUTPUT CONTROL:")
	fmt.Println("  -out=visualization.png Output path (empty string skips saving)")
	fmt.Println("  -base64                Print the chart as a data:image/...;base64 URI")
	fmt.Println("  -markdown              Print the chart as an inline <img> markdown tag")
	fmt.Println("  -dpi=150               Export resolution")
	fmt.Println("  -format=png            Export format: png or svg")
	fmt.Println("  -preset=default        Start from a named preset: default, calm,")
	fmt.Println("                         volatile, dark (explicit flags still win)")
	fmt.Println()

	fmt.Println("EXAMPLES:")
	fmt.Println("  randviz                                  # Defaults, writes visualization.png")
	fmt.Println("  randviz -points=500 -noise=2.5 -seed=42  # Reproducible long series")
	fmt.Println("  randviz -preset=volatile -markdown       # Spiky preset, inline markdown")
	fmt.Println("  randviz -format=svg -out=chart.svg       # Vector output")
}
