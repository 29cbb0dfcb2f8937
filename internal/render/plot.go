package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/amaren/dynlab/internal/analysis"
	"github.com/amaren/dynlab/internal/basin"
)

// Palette is the fixed 8-class raster palette: entry 0 background,
// 1..7 attractor colors. Matches the terminal palette in viz.
var Palette = [8]color.RGBA{
	{0x1e, 0x1e, 0x1e, 0xff},
	{0xe5, 0x39, 0x35, 0xff},
	{0x43, 0xa0, 0x47, 0xff},
	{0x1e, 0x88, 0xe5, 0xff},
	{0xfd, 0xd8, 0x35, 0xff},
	{0x8e, 0x24, 0xaa, 0xff},
	{0x00, 0xac, 0xc1, 0xff},
	{0xfb, 0x8c, 0x00, 0xff},
}

// Basin writes a PNG of a label raster, one box glyph per grid cell.
func Basin(r *basin.Raster, g *basin.Grid, title, path string) error {
	if r == nil || g == nil {
		return fmt.Errorf("render: nil raster or grid")
	}
	if r.NX != g.NX || r.NY != g.NY {
		return fmt.Errorf("render: raster %dx%d does not match grid %dx%d", r.NX, r.NY, g.NX, g.NY)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	for label := 1; label < len(Palette); label++ {
		pts := make(plotter.XYs, 0)
		for i := 0; i < r.NX; i++ {
			for j := 0; j < r.NY; j++ {
				if r.At(i, j) == label {
					pts = append(pts, plotter.XY{X: g.Xs[i], Y: g.Ys[j]})
				}
			}
		}
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Color = Palette[label]
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// Bifurcation writes a PNG scatter of a parameter sweep.
func Bifurcation(data []analysis.BifurcationPoint, paramName, path string) error {
	p := plot.New()
	p.Title.Text = "bifurcation diagram"
	p.X.Label.Text = paramName
	p.Y.Label.Text = "settled values"

	pts := make(plotter.XYs, 0)
	for _, bp := range data {
		for _, v := range bp.Values {
			pts = append(pts, plotter.XY{X: bp.Param, Y: v})
		}
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{0x1e, 0x88, 0xe5, 0xff}
	s.GlyphStyle.Radius = vg.Points(0.7)
	p.Add(s)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

// PhasePortrait writes a PNG line plot of a trajectory in the phase plane.
func PhasePortrait(portrait *analysis.PhasePortrait2D, title, path string) error {
	if portrait == nil {
		return fmt.Errorf("render: nil portrait")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = fmt.Sprintf("x[%d]", portrait.XIndex)
	p.Y.Label.Text = fmt.Sprintf("x[%d]", portrait.YIndex)

	pts := make(plotter.XYs, len(portrait.Points))
	for i, pt := range portrait.Points {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = color.RGBA{0x43, 0xa0, 0x47, 0xff}
	p.Add(l)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

// Scatter writes a PNG scatter of raw (x, y) points; used for Poincaré
// sections and nullclines.
func Scatter(points []struct{ X, Y float64 }, title, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{0x8e, 0x24, 0xaa, 0xff}
	s.GlyphStyle.Radius = vg.Points(1)
	p.Add(s)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
