package basin

import "math"

// ClassifyTerminal maps a terminal state, projected to its first two
// coordinates, to a 1-based attractor label, or Unclassified if no
// attractor lies within maxDist.
//
// The first attractor in list order within tolerance wins, even when a
// later one is strictly closer. This reproduces the short-circuit scan
// the rasters and palette were calibrated against; it is deliberately
// not a nearest-attractor rule.
func ClassifyTerminal(terminal []float64, attractors []Point, maxDist float64) int {
	if len(terminal) < 2 {
		return Unclassified
	}
	tx, ty := terminal[0], terminal[1]
	if math.IsNaN(tx) || math.IsNaN(ty) || math.IsInf(tx, 0) || math.IsInf(ty, 0) {
		return Unclassified
	}
	for i, a := range attractors {
		if math.Hypot(tx-a.X, ty-a.Y) <= maxDist {
			return i + 1
		}
	}
	return Unclassified
}
