package visualization

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdownImage writes an inline <img> tag embedding src, suitable for
// pasting into markdown or notebook cells. Zero width/height leave the
// corresponding dimension unconstrained.
func WriteMarkdownImage(w io.Writer, src, alt string, width, height int) error {
	var styleParts []string
	if width > 0 {
		styleParts = append(styleParts, fmt.Sprintf("width: %dpx", width))
	}
	if height > 0 {
		styleParts = append(styleParts, fmt.Sprintf("height: %dpx", height))
	}

	var style string
	if len(styleParts) > 0 {
		style = fmt.Sprintf(" style=%q", strings.Join(styleParts, "; "))
	}

	_, err := fmt.Fprintf(w, "<img src=%q alt=%q%s>\n", src, alt, style)
	return err
}
