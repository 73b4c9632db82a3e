package presets

import "randviz/pkg/config"

// Preset is a named, ready-made configuration
type Preset struct {
	Name        string
	Description string
	Config      config.Config
}

// All returns every available preset keyed by name
func All() map[string]Preset {
	return map[string]Preset{
		"default":  makeDefault(),
		"calm":     makeCalm(),
		"volatile": makeVolatile(),
		"dark":     makeDark(),
	}
}

// ByName returns a specific preset by name
func ByName(name string) (Preset, bool) {
	preset, exists := All()[name]
	return preset, exists
}

// Names returns the available preset names
func Names() []string {
	return []string{"default", "calm", "volatile", "dark"}
}

func makeDefault() Preset {
	return Preset{
		Name:        "default",
		Description: "Baseline noisy series around 200 with the threshold just below it",
		Config:      config.Default(),
	}
}

func makeCalm() Preset {
	cfg := config.Default()
	cfg.NoiseStd = 0.5
	cfg.Threshold = 199.0
	cfg.Title = "Calm Series"
	return Preset{
		Name:        "calm",
		Description: "Low noise, tight threshold; most values stay below the line",
		Config:      cfg,
	}
}

func makeVolatile() Preset {
	cfg := config.Default()
	cfg.NPoints = 200
	cfg.NoiseStd = 5.0
	cfg.Threshold = 205.0
	cfg.Title = "Volatile Series"
	return Preset{
		Name:        "volatile",
		Description: "Long, high-variance series with frequent threshold crossings",
		Config:      cfg,
	}
}

func makeDark() Preset {
	cfg := config.Default()
	cfg.ColorScheme = "dark"
	cfg.Title = "Random Data Visualization (dark)"
	return Preset{
		Name:        "dark",
		Description: "Default generation parameters rendered on the dark palette",
		Config:      cfg,
	}
}
