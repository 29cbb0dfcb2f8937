package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/amaren/dynlab/internal/dynamo"
)

// PowerSpectrum returns the one-sided magnitude spectrum of a series.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	coeffs := fft.FFTReal(data)
	ps := make([]float64, len(coeffs)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(coeffs[i])
	}
	return ps
}

// TrajectorySpectrum integrates a trajectory and returns the power
// spectrum of one state component. A broadband spectrum (no dominant
// peaks) is a quick fingerprint of chaotic motion.
func TrajectorySpectrum(
	sys dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	stateIndex int,
	dt, duration float64,
) []float64 {
	if stateIndex >= len(x0) || dt <= 0 || duration <= 0 {
		return nil
	}

	series := make([]float64, 0, int(duration/dt))
	x := x0.Clone()
	for t := 0.0; t < duration; t += dt {
		x = integ.Step(sys, x, nil, t, dt)
		series = append(series, x[stateIndex])
	}

	return PowerSpectrum(series)
}
