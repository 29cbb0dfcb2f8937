// Package analysis provides chaos and dynamics analysis tools.
//
// The package includes tools for characterizing dynamical systems:
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [LyapunovSpectrum]: per-dimension exponents
//   - [BifurcationDiagram]: parameter sweep for bifurcation analysis
//   - [GeneratePhasePortrait]: 2D phase space trajectories
//   - [GeneratePoincareSection]: stroboscopic section of phase space
//   - [SampleField]: vector-field arrows for quiver views
//   - [Nullclines]: zero contours of individual field components
//   - [TrajectorySpectrum]: power spectrum of a state component
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(sys, integ, x0, dt, duration, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
