package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mplthemes/mplthemes/color"
)

// Swatch renders a solid block of the given color followed by its name.
func Swatch(c color.Color) string {
	block := Bg(lipgloss.Color(c.Hex()))("      ")
	return fmt.Sprintf("%s %s", block, c.Name)
}

// Strip renders one horizontal line of n cells sampled along a colormap-like
// function, producing a terminal approximation of a gradient.
func Strip(at func(t float64) []float64, n int) string {
	if n < 1 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		rgb := at(t)
		hex := fmt.Sprintf("#%02x%02x%02x",
			uint8(rgb[0]*255.0+0.5), uint8(rgb[1]*255.0+0.5), uint8(rgb[2]*255.0+0.5))
		b.WriteString(Bg(lipgloss.Color(hex))(" "))
	}
	return b.String()
}

// Grid lays swatches out in rows of ncols, preserving declaration order.
func Grid(colors []color.Color, ncols int) string {
	if ncols < 1 {
		ncols = 1
	}
	var rows []string
	for start := 0; start < len(colors); start += ncols {
		end := start + ncols
		if end > len(colors) {
			end = len(colors)
		}
		cells := make([]string, 0, ncols)
		for _, c := range colors[start:end] {
			cells = append(cells, New().Width(28).Render(Swatch(c)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
