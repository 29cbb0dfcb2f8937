// Package basin classifies basins of attraction on a regular grid.
//
// A [Classifier] samples a rectangular region of the (x, y) state plane,
// integrates the flow from every sample to a fixed horizon on a bounded
// worker pool, and labels each cell with the first attractor (in list
// order) whose distance to the terminal state is within tolerance. The
// result is a [Raster] of labels 0..len(attractors), 0 meaning no match
// or a failed trajectory.
//
// At most [MaxAttractors] reference points are accepted; violating that
// (or any other [Config] field) rejects the run with [ErrConfig] before
// integration starts. Everything else degrades per cell: a trajectory
// that goes NaN, diverges, or panics in the field yields label 0 and the
// rest of the raster is unaffected.
//
// Output is deterministic: a cell's label depends only on its own
// trajectory, so repeated runs produce identical rasters regardless of
// worker count or completion order.
package basin
