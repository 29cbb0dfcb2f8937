package integrators

import (
	"fmt"

	"github.com/amaren/dynlab/internal/dynamo"
)

var builders = map[string]func() dynamo.Integrator{
	"euler": func() dynamo.Integrator { return NewEuler() },
	"rk4":   func() dynamo.Integrator { return NewRK4() },
	"rk45":  func() dynamo.Integrator { return NewRK45() },
}

// New returns a fresh integrator by name. Each call returns a distinct
// instance, so callers can hand one to every worker.
func New(name string) (dynamo.Integrator, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	return names
}
