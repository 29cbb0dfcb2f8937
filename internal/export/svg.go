package export

import (
	"fmt"
	"strings"

	"github.com/amaren/dynlab/internal/basin"
	"github.com/amaren/dynlab/internal/viz"
)

// Hex colors matching the 8-class raster palette.
var svgPalette = [8]string{
	"#1e1e1e",
	"#e53935",
	"#43a047",
	"#1e88e5",
	"#fdd835",
	"#8e24aa",
	"#00acc1",
	"#fb8c00",
}

// RasterToSVG renders a basin raster as a grid of colored rects,
// cellSize pixels per grid cell, y increasing upward.
func RasterToSVG(r *basin.Raster, cellSize float64) string {
	if r == nil || r.NX == 0 || r.NY == 0 {
		return ""
	}

	width := float64(r.NX) * cellSize
	height := float64(r.NY) * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgPalette[0]))

	for i := 0; i < r.NX; i++ {
		for j := 0; j < r.NY; j++ {
			label := r.At(i, j)
			if label <= 0 || label >= len(svgPalette) {
				continue
			}
			x := float64(i) * cellSize
			y := float64(r.NY-1-j) * cellSize
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, cellSize, cellSize, svgPalette[label]))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#00ff00">
`, width, height, width, height))

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	// Convert each braille character to dots
	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
