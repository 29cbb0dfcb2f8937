package integrators

import (
	"math"
	"testing"

	"github.com/amaren/dynlab/internal/dynamo"
)

type simpleOscillator struct{}

func (s *simpleOscillator) Derive(x dynamo.State, _ dynamo.Params, _ float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleOscillator) StateDim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	sys := &simpleOscillator{}
	integ := NewRK4()

	x := dynamo.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, nil, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestEulerConverges(t *testing.T) {
	sys := &simpleOscillator{}
	integ := NewEuler()

	x := dynamo.State{1.0, 0.0}
	dt := 0.0001

	for i := 0; i < 10000; i++ {
		x = integ.Step(sys, x, nil, float64(i)*dt, dt)
	}

	expected := math.Cos(1.0)
	if math.Abs(x[0]-expected) > 1e-2 {
		t.Errorf("euler drifted too far: got %.4f, expected %.4f", x[0], expected)
	}
}

func TestRegistryNames(t *testing.T) {
	for _, name := range []string{"euler", "rk4", "rk45"} {
		if _, err := New(name); err != nil {
			t.Errorf("expected integrator %q, got error %v", name, err)
		}
	}

	if _, err := New("leapfrog"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
