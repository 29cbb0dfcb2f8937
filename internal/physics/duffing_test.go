package physics

import (
	"math"
	"testing"

	"github.com/amaren/dynlab/internal/dynamo"
)

func TestDuffingWellBottoms(t *testing.T) {
	d := NewDuffing()

	attractors := d.Attractors()
	if len(attractors) != 2 {
		t.Fatalf("expected 2 well bottoms, got %d", len(attractors))
	}

	w := math.Sqrt(-d.Alpha / d.Beta)
	if math.Abs(attractors[0][0]+w) > 1e-12 || math.Abs(attractors[1][0]-w) > 1e-12 {
		t.Errorf("expected wells at ±%f, got %v", w, attractors)
	}
}

func TestDuffingSingleWell(t *testing.T) {
	d := NewDuffing()
	d.Alpha = 1.0

	attractors := d.Attractors()
	if len(attractors) != 1 {
		t.Fatalf("expected 1 attractor for alpha > 0, got %d", len(attractors))
	}
	if attractors[0][0] != 0 {
		t.Errorf("expected single well at origin, got %v", attractors[0])
	}
}

func TestDuffingWellIsEquilibrium(t *testing.T) {
	d := NewDuffing()
	d.Delta = 0
	d.Gamma = 0

	w := math.Sqrt(-d.Alpha / d.Beta)
	dx := d.Derive(dynamo.State{w, 0, 0}, nil, 0)

	if math.Abs(dx[0]) > 1e-10 || math.Abs(dx[1]) > 1e-10 {
		t.Errorf("expected well bottom to be an equilibrium, got %v", dx)
	}
}

func TestDuffingEnergyAtWell(t *testing.T) {
	d := NewDuffing()

	w := math.Sqrt(-d.Alpha / d.Beta)
	eWell := d.Energy(dynamo.State{w, 0, 0})
	eTop := d.Energy(dynamo.State{0, 0, 0})

	if eWell >= eTop {
		t.Errorf("well energy %f should be below the barrier energy %f", eWell, eTop)
	}
}

func TestDuffingShortState(t *testing.T) {
	d := NewDuffing()

	dx := d.Derive(dynamo.State{1.0}, nil, 0)
	if len(dx) != 3 {
		t.Errorf("expected padded derivative of length 3, got %d", len(dx))
	}
}
