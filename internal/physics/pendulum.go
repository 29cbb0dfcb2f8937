package physics

import (
	"math"

	"github.com/amaren/dynlab/internal/dynamo"
)

// Pendulum is a damped pendulum. State is [theta, omega].
type Pendulum struct {
	Mass    float64
	Length  float64
	Damping float64
	Gravity float64
}

func NewPendulum() *Pendulum {
	return &Pendulum{
		Mass:    1.0,
		Length:  1.0,
		Damping: 0.1,
		Gravity: 9.81,
	}
}

func (p *Pendulum) StateDim() int { return 2 }

func (p *Pendulum) Derive(x dynamo.State, _ dynamo.Params, _ float64) dynamo.State {
	theta, omega := x[0], x[1]
	alpha := -p.Gravity/p.Length*math.Sin(theta) - p.Damping/(p.Mass*p.Length*p.Length)*omega
	return dynamo.State{omega, alpha}
}

func (p *Pendulum) DefaultState() dynamo.State { return dynamo.State{0.5, 0.0} }

func (p *Pendulum) Energy(x dynamo.State) float64 {
	theta, omega := x[0], x[1]
	ke := 0.5 * p.Mass * p.Length * p.Length * omega * omega
	pe := p.Mass * p.Gravity * p.Length * (1 - math.Cos(theta))
	return ke + pe
}

// Attractors returns the downward rest points visible in a phase window
// spanning one turn either way.
func (p *Pendulum) Attractors() [][2]float64 {
	return [][2]float64{{0, 0}, {2 * math.Pi, 0}, {-2 * math.Pi, 0}}
}

func (p *Pendulum) GetParams() map[string]float64 {
	return map[string]float64{"mass": p.Mass, "length": p.Length, "damping": p.Damping, "gravity": p.Gravity}
}

func (p *Pendulum) SetParam(n string, v float64) {
	switch n {
	case "mass":
		p.Mass = v
	case "length":
		p.Length = v
	case "damping":
		p.Damping = v
	case "gravity":
		p.Gravity = v
	}
}
