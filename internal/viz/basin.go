package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amaren/dynlab/internal/basin"
)

// The fixed 8-class palette: index 0 is the unclassified background,
// 1..7 the attractor colors. Raster labels index straight into it.
var palette = [8]lipgloss.Color{
	lipgloss.Color("236"), // background
	lipgloss.Color("196"), // red
	lipgloss.Color("46"),  // green
	lipgloss.Color("33"),  // blue
	lipgloss.Color("226"), // yellow
	lipgloss.Color("201"), // magenta
	lipgloss.Color("51"),  // cyan
	lipgloss.Color("208"), // orange
}

var cellStyles = func() [8]lipgloss.Style {
	var s [8]lipgloss.Style
	for i, c := range palette {
		s[i] = lipgloss.NewStyle().Foreground(c)
	}
	return s
}()

// PaletteColor returns the ANSI color for a label, clamping out-of-range
// labels to the background.
func PaletteColor(label int) lipgloss.Color {
	if label < 0 || label >= len(palette) {
		label = 0
	}
	return palette[label]
}

// RasterToANSI renders a basin raster as colored half-blocks, one rune
// per grid cell, y increasing upward.
func RasterToANSI(r *basin.Raster) string {
	if r == nil || r.NX == 0 || r.NY == 0 {
		return ""
	}

	var sb strings.Builder
	for j := r.NY - 1; j >= 0; j-- {
		for i := 0; i < r.NX; i++ {
			label := r.At(i, j)
			if label < 0 || label >= len(cellStyles) {
				label = 0
			}
			sb.WriteString(cellStyles[label].Render("██"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RasterToASCII is the color-free fallback: digits 1..7 per basin, '.'
// for unclassified.
func RasterToASCII(r *basin.Raster) string {
	if r == nil {
		return ""
	}

	var sb strings.Builder
	for j := r.NY - 1; j >= 0; j-- {
		for i := 0; i < r.NX; i++ {
			label := r.At(i, j)
			if label <= 0 || label > 9 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + label))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
