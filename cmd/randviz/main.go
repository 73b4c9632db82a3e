package main

import (
	"fmt"
	"os"

	"randviz/pkg/analysis"
	"randviz/pkg/config"
	"randviz/pkg/presets"
	"randviz/pkg/visualization"
)

func main() {
	parser := config.NewParser()
	cfg, runCfg, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if runCfg.ShowHelp {
		return
	}

	resolved := *cfg
	if runCfg.Preset != "default" {
		preset, exists := presets.ByName(runCfg.Preset)
		if !exists {
			fmt.Fprintf(os.Stderr, "Unknown preset: %s (available: %v)\n", runCfg.Preset, presets.Names())
			os.Exit(1)
		}
		// Preset supplies the base; explicitly set flags still win
		resolved = parser.ApplyExplicit(preset.Config)
	}

	if err := run(resolved, runCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, runCfg *config.RunConfig) error {
	return visualization.With(cfg, func(v *visualization.Visualizer) error {
		if _, err := v.GenerateData(); err != nil {
			return err
		}

		summary, err := v.Statistics()
		if err != nil {
			return err
		}
		if err := analysis.WriteSummary(os.Stdout, cfg.Title, summary); err != nil {
			return err
		}

		diag := analysis.Diagnose(cfg.BaseValue, cfg.NoiseStd, cfg.Threshold, summary, cfg.NPoints)
		if err := analysis.WriteDiagnostics(os.Stdout, diag); err != nil {
			return err
		}

		if _, err := v.CreateVisualization(); err != nil {
			return err
		}

		if runCfg.Out != "" {
			if err := v.SaveFigure(runCfg.Out); err != nil {
				return err
			}
			fmt.Printf("\nChart saved to %s\n", runCfg.Out)
		}

		if runCfg.EmitBase64 || runCfg.EmitMarkdown {
			dataURI, err := v.ToBase64(runCfg.DPI, runCfg.Format)
			if err != nil {
				return err
			}
			if runCfg.EmitMarkdown {
				return visualization.WriteMarkdownImage(os.Stdout, dataURI, cfg.Title, 800, 0)
			}
			fmt.Println(dataURI)
		}

		return nil
	})
}
