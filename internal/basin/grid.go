package basin

import (
	"fmt"
	"math"

	"github.com/amaren/dynlab/internal/dynamo"
)

// Grid is the regular sample lattice over a Region. Points are ordered
// row-major with x outer: flat index k = i*NY + j for point (Xs[i], Ys[j]).
// The raster produced from a run uses the same indexing.
type Grid struct {
	Region Region
	Delta  float64
	NX, NY int
	Xs, Ys []float64
}

// NewGrid samples min + i*delta along each axis. The endpoint is included
// exactly when the span is an integer multiple of delta; otherwise the
// last sample undershoots the upper bound. Samples never leave the region.
func NewGrid(r Region, delta float64) (*Grid, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("%w: delta must be positive, got %g", ErrConfig, delta)
	}
	if r.XMax <= r.XMin || r.YMax <= r.YMin {
		return nil, fmt.Errorf("%w: empty region %+v", ErrConfig, r)
	}
	g := &Grid{
		Region: r,
		Delta:  delta,
		Xs:     axisPoints(r.XMin, r.XMax, delta),
		Ys:     axisPoints(r.YMin, r.YMax, delta),
	}
	g.NX, g.NY = len(g.Xs), len(g.Ys)
	return g, nil
}

func axisPoints(min, max, delta float64) []float64 {
	// Tolerance absorbs float noise when the span is an exact multiple.
	n := int(math.Floor((max-min)/delta+1e-9)) + 1
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = min + float64(i)*delta
	}
	return pts
}

// Len returns the number of sample points.
func (g *Grid) Len() int { return g.NX * g.NY }

// Cell maps a flat index back to lattice coordinates.
func (g *Grid) Cell(k int) (i, j int) { return k / g.NY, k % g.NY }

// Lift builds the initial condition for flat index k in a flow of the
// given state dimension: the grid coordinates plus zero-valued extra
// dimensions (a forcing phase, say).
func (g *Grid) Lift(k, dim int) dynamo.State {
	i, j := g.Cell(k)
	if dim < 2 {
		dim = 2
	}
	x := make(dynamo.State, dim)
	x[0], x[1] = g.Xs[i], g.Ys[j]
	return x
}
