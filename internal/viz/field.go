package viz

import (
	"math"

	"github.com/amaren/dynlab/internal/analysis"
)

// FieldToCanvas draws normalized flow arrows onto a Braille canvas.
// Arrow length is fixed; only direction carries information.
func FieldToCanvas(samples []analysis.FieldSample, width, height int) *Canvas {
	c := NewCanvas(width, height)
	if len(samples) == 0 {
		return c
	}

	minX, maxX := samples[0].X, samples[0].X
	minY, maxY := samples[0].Y, samples[0].Y
	for _, s := range samples {
		minX = math.Min(minX, s.X)
		maxX = math.Max(maxX, s.X)
		minY = math.Min(minY, s.Y)
		maxY = math.Max(maxY, s.Y)
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	pxw, pxh := width*2, height*4
	arrow := 3.0 // sub-pixels

	for _, s := range samples {
		mag := math.Hypot(s.DX, s.DY)
		if mag < 1e-12 {
			continue
		}
		x0 := int((s.X - minX) / rangeX * float64(pxw-1))
		y0 := pxh - 1 - int((s.Y-minY)/rangeY*float64(pxh-1))
		x1 := x0 + int(math.Round(arrow*s.DX/mag))
		y1 := y0 - int(math.Round(arrow*s.DY/mag))
		c.DrawLine(x0, y0, x1, y1)
	}
	return c
}

// PointsToCanvas scatters (x, y) points onto a Braille canvas, used for
// nullclines and Poincaré sections in the terminal.
func PointsToCanvas(points []struct{ X, Y float64 }, width, height int) *Canvas {
	c := NewCanvas(width, height)
	if len(points) == 0 {
		return c
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	rangeX, rangeY := maxX-minX, maxY-minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	pxw, pxh := width*2, height*4
	for _, p := range points {
		x := int((p.X - minX) / rangeX * float64(pxw-1))
		y := pxh - 1 - int((p.Y-minY)/rangeY*float64(pxh-1))
		c.Set(x, y)
	}
	return c
}
