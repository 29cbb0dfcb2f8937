// Package physics provides dynamical system models for exploration.
//
// Each model implements the [dynamo.System] interface, defining the
// differential equations governing the system's evolution:
//
//   - [Pendulum]: damped pendulum
//   - [Duffing]: forced double-well oscillator
//   - [VanDerPol]: relaxation oscillator with a limit cycle
//   - [MagneticPendulum]: pendulum over magnets, fractal basins
//   - [Lorenz]: butterfly attractor
//   - [Rossler]: single-lobe chaotic attractor
//
// Models also implement [dynamo.Configurable] for parameter sweeps, and
// the basin-friendly ones implement [AttractorSource].
package physics
