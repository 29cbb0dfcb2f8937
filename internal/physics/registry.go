package physics

import (
	"fmt"
	"sort"

	"github.com/amaren/dynlab/internal/dynamo"
)

// AttractorSource is implemented by models that know their own long-term
// destinations, so callers can classify basins without hand-typing points.
type AttractorSource interface {
	Attractors() [][2]float64
}

// Defaulter exposes a sensible initial condition for a model.
type Defaulter interface {
	DefaultState() dynamo.State
}

var builders = map[string]func() dynamo.System{
	"duffing":   func() dynamo.System { return NewDuffing() },
	"magpend":   func() dynamo.System { return NewMagneticPendulum(3, 1.5) },
	"pendulum":  func() dynamo.System { return NewPendulum() },
	"vanderpol": func() dynamo.System { return NewVanDerPol() },
	"lorenz":    func() dynamo.System { return NewLorenz() },
	"rossler":   func() dynamo.System { return NewRossler() },
}

func New(name string) (dynamo.System, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
