package basin

// Raster is the label matrix produced by a classification run. Entry
// (i, j) corresponds to grid point (Xs[i], Ys[j]); values are in
// [0, len(attractors)].
type Raster struct {
	NX, NY int
	cells  []int
}

func NewRaster(nx, ny int) *Raster {
	return &Raster{NX: nx, NY: ny, cells: make([]int, nx*ny)}
}

func (r *Raster) At(i, j int) int     { return r.cells[i*r.NY+j] }
func (r *Raster) Set(i, j, label int) { r.cells[i*r.NY+j] = label }

// Cells exposes the flat row-major (x outer) backing slice.
func (r *Raster) Cells() []int { return r.cells }

// ForceCorner overwrites entry (0,0) with Unclassified. The override
// anchors the renderer's color scale at the background color; it is a
// post-processing step, not part of classification.
func (r *Raster) ForceCorner() {
	if len(r.cells) > 0 {
		r.cells[0] = Unclassified
	}
}

// Counts tallies cells per label, index 0 holding the unclassified count.
func (r *Raster) Counts() []int {
	max := 0
	for _, v := range r.cells {
		if v > max {
			max = v
		}
	}
	counts := make([]int, max+1)
	for _, v := range r.cells {
		counts[v]++
	}
	return counts
}
