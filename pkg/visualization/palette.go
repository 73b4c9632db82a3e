package visualization

import "github.com/wcharczuk/go-chart/v2/drawing"

// Palette holds the colors used to style one chart
type Palette struct {
	Background drawing.Color
	Text       drawing.Color
	Grid       drawing.Color
	Line       drawing.Color
	Fill       drawing.Color
	Threshold  drawing.Color
	Annotation drawing.Color
}

// PaletteFor returns the palette for a named color scheme. Unknown names
// fall back to the default scheme.
func PaletteFor(scheme string) Palette {
	if scheme == "dark" {
		return Palette{
			Background: drawing.Color{R: 30, G: 30, B: 34, A: 255},
			Text:       drawing.Color{R: 222, G: 222, B: 222, A: 255},
			Grid:       drawing.Color{R: 82, G: 82, B: 90, A: 255},
			Line:       drawing.Color{R: 104, G: 164, B: 232, A: 255},
			Fill:       drawing.Color{R: 74, G: 186, B: 104, A: 100},
			Threshold:  drawing.Color{R: 230, G: 96, B: 96, A: 255},
			Annotation: drawing.Color{R: 58, G: 58, B: 64, A: 230},
		}
	}
	return Palette{
		Background: drawing.ColorWhite,
		Text:       drawing.Color{R: 51, G: 51, B: 51, A: 255},
		Grid:       drawing.Color{R: 200, G: 200, B: 200, A: 255},
		Line:       drawing.Color{R: 31, G: 119, B: 180, A: 204},
		Fill:       drawing.Color{R: 44, G: 160, B: 44, A: 100},
		Threshold:  drawing.Color{R: 214, G: 39, B: 40, A: 178},
		Annotation: drawing.Color{R: 245, G: 222, B: 179, A: 128},
	}
}
