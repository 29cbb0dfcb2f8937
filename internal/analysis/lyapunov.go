package analysis

import (
	"math"

	"github.com/amaren/dynlab/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent using the
// trajectory separation method. A positive value indicates chaos.
//
// Algorithm:
// 1. Run two nearby trajectories
// 2. Measure their divergence over time
// 3. λ ≈ (1/t) * ln(|δx(t)/δx(0)|)
func LyapunovExponent(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) float64 {
	if len(x0) == 0 {
		return 0
	}

	// Create perturbed initial condition
	x0p := x0.Clone()
	x0p[0] += perturbation

	return lyapunovForPerturbation(sys, integ, x0, x0p, dt, duration, perturbation)
}

// LyapunovSpectrum computes multiple Lyapunov exponents by perturbing
// each state dimension independently.
func LyapunovSpectrum(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt, duration float64,
	perturbation float64,
) []float64 {
	n := len(x0)
	spectrum := make([]float64, n)

	for i := 0; i < n; i++ {
		xp := x0.Clone()
		xp[i] += perturbation

		spectrum[i] = lyapunovForPerturbation(sys, integ, x0, xp, dt, duration, perturbation)
	}

	return spectrum
}

// Benettin's method: the perturbed trajectory is pulled back to distance
// d0 after every step, so each term measures one step's growth only.
func lyapunovForPerturbation(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0, x0p dynamo.State,
	dt, duration, d0 float64,
) float64 {
	if d0 <= 0 {
		return 0
	}

	x := x0.Clone()
	xp := x0p.Clone()

	t := 0.0
	sumLog := 0.0
	count := 0

	for t < duration {
		x = integ.Step(sys, x, nil, t, dt)
		xp = integ.Step(sys, xp, nil, t, dt)
		t += dt

		sep := 0.0
		for i := range x {
			diff := xp[i] - x[i]
			sep += diff * diff
		}
		sep = math.Sqrt(sep)

		if sep <= 0 {
			continue
		}

		sumLog += math.Log(sep / d0)
		count++

		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
