package analysis

import (
	"github.com/amaren/dynlab/internal/dynamo"
)

// FieldSample is the flow direction at one sample point, projected onto
// the (x, y) plane.
type FieldSample struct {
	X, Y   float64
	DX, DY float64
}

// SampleField evaluates the vector field on an nx × ny lattice over the
// given window at time t. Extra state dimensions are zero-filled, the
// same lifting the basin grid uses.
func SampleField(
	sys dynamo.System,
	p dynamo.Params,
	xMin, xMax, yMin, yMax float64,
	nx, ny int,
	t float64,
) []FieldSample {
	if nx < 2 || ny < 2 || xMax <= xMin || yMax <= yMin {
		return nil
	}

	dim := sys.StateDim()
	if dim < 2 {
		dim = 2
	}

	samples := make([]FieldSample, 0, nx*ny)
	x := make(dynamo.State, dim)

	for i := 0; i < nx; i++ {
		px := xMin + float64(i)*(xMax-xMin)/float64(nx-1)
		for j := 0; j < ny; j++ {
			py := yMin + float64(j)*(yMax-yMin)/float64(ny-1)

			for k := range x {
				x[k] = 0
			}
			x[0], x[1] = px, py

			d := sys.Derive(x, p, t)
			if len(d) < 2 {
				continue
			}
			samples = append(samples, FieldSample{X: px, Y: py, DX: d[0], DY: d[1]})
		}
	}
	return samples
}

// Nullclines finds points where one derivative component vanishes, by
// linear interpolation along lattice edges with a sign change. comp
// selects the component (0 for the x-nullcline, 1 for the y-nullcline).
func Nullclines(
	sys dynamo.System,
	p dynamo.Params,
	xMin, xMax, yMin, yMax float64,
	n int,
	comp int,
	t float64,
) []struct{ X, Y float64 } {
	if n < 2 || comp < 0 || xMax <= xMin || yMax <= yMin {
		return nil
	}

	dim := sys.StateDim()
	if dim < 2 {
		dim = 2
	}
	if comp >= dim {
		return nil
	}

	dx := (xMax - xMin) / float64(n-1)
	dy := (yMax - yMin) / float64(n-1)

	// Evaluate the component on the full lattice first.
	vals := make([][]float64, n)
	state := make(dynamo.State, dim)
	for i := range vals {
		vals[i] = make([]float64, n)
		for j := range vals[i] {
			for k := range state {
				state[k] = 0
			}
			state[0] = xMin + float64(i)*dx
			state[1] = yMin + float64(j)*dy
			d := sys.Derive(state, p, t)
			if comp < len(d) {
				vals[i][j] = d[comp]
			}
		}
	}

	points := make([]struct{ X, Y float64 }, 0)
	emit := func(x, y float64) {
		points = append(points, struct{ X, Y float64 }{x, y})
	}

	for i := 0; i < n; i++ {
		px := xMin + float64(i)*dx
		for j := 0; j < n; j++ {
			py := yMin + float64(j)*dy
			v := vals[i][j]

			if v == 0 {
				emit(px, py)
				continue
			}

			// Horizontal edge to (i+1, j)
			if i+1 < n {
				w := vals[i+1][j]
				if (v < 0 && w > 0) || (v > 0 && w < 0) {
					frac := v / (v - w)
					emit(px+frac*dx, py)
				}
			}
			// Vertical edge to (i, j+1)
			if j+1 < n {
				w := vals[i][j+1]
				if (v < 0 && w > 0) || (v > 0 && w < 0) {
					frac := v / (v - w)
					emit(px, py+frac*dy)
				}
			}
		}
	}
	return points
}
