package analysis

import (
	"math"
	"testing"

	"github.com/amaren/dynlab/internal/dynamo"
	"github.com/amaren/dynlab/internal/integrators"
)

// testOscillator is a harmonic oscillator with a tunable frequency.
type testOscillator struct {
	omega float64
}

func (o *testOscillator) StateDim() int { return 2 }

func (o *testOscillator) Derive(x dynamo.State, _ dynamo.Params, _ float64) dynamo.State {
	return dynamo.State{x[1], -o.omega * o.omega * x[0]}
}

func (o *testOscillator) GetParams() map[string]float64 {
	return map[string]float64{"omega": o.omega}
}

func (o *testOscillator) SetParam(n string, v float64) {
	if n == "omega" {
		o.omega = v
	}
}

// expander grows exponentially, x' = x, so nearby trajectories
// separate at a known rate.
type expander struct{}

func (e *expander) StateDim() int { return 1 }

func (e *expander) Derive(x dynamo.State, _ dynamo.Params, _ float64) dynamo.State {
	return dynamo.State{x[0]}
}

func TestBifurcationDiagramSweep(t *testing.T) {
	sys := &testOscillator{omega: 1.0}
	integ := integrators.NewRK4()

	data := BifurcationDiagram(sys, integ, "omega", 0.5, 2.0, 10, 0,
		dynamo.State{1, 0}, 0.01, 1.0, 2.0)

	if len(data) != 10 {
		t.Fatalf("expected 10 parameter values, got %d", len(data))
	}

	if math.Abs(data[0].Param-0.5) > 1e-10 {
		t.Errorf("first param should be 0.5, got %f", data[0].Param)
	}
	if math.Abs(data[len(data)-1].Param-2.0) > 1e-10 {
		t.Errorf("last param should be 2.0, got %f", data[len(data)-1].Param)
	}

	for _, p := range data {
		if len(p.Values) == 0 {
			t.Errorf("no settled values recorded at param %f", p.Param)
		}
	}
}

func TestBifurcationDiagramNotConfigurable(t *testing.T) {
	sys := &expander{}
	integ := integrators.NewEuler()

	data := BifurcationDiagram(sys, integ, "k", 0, 1, 5, 0,
		dynamo.State{1}, 0.01, 0.1, 0.1)

	if data != nil {
		t.Error("expected nil for a system without tunable parameters")
	}
}

func TestLyapunovExponentExpanding(t *testing.T) {
	sys := &expander{}
	integ := integrators.NewRK4()

	lambda := LyapunovExponent(sys, integ, dynamo.State{1.0}, 0.001, 2.0, 1e-8)

	// x' = x separates perturbations at exactly rate 1.
	if math.Abs(lambda-1.0) > 0.1 {
		t.Errorf("expected exponent near 1.0, got %f", lambda)
	}
}

func TestLyapunovExponentIndependentOfRunLength(t *testing.T) {
	sys := &expander{}
	integ := integrators.NewRK4()

	// Per-step renormalization keeps each term a one-step growth rate, so
	// the estimate must not scale with the number of steps taken.
	short := LyapunovExponent(sys, integ, dynamo.State{1.0}, 0.001, 0.5, 1e-8)
	long := LyapunovExponent(sys, integ, dynamo.State{1.0}, 0.001, 4.0, 1e-8)

	if math.Abs(short-long) > 0.05 {
		t.Errorf("estimate depends on run length: %f vs %f", short, long)
	}
	if math.Abs(long-1.0) > 0.1 {
		t.Errorf("expected exponent near 1.0, got %f", long)
	}
}

func TestLyapunovExponentOscillator(t *testing.T) {
	sys := &testOscillator{omega: 1.0}
	integ := integrators.NewRK4()

	lambda := LyapunovExponent(sys, integ, dynamo.State{1, 0}, 0.01, 20.0, 1e-8)

	if lambda > 0.1 {
		t.Errorf("harmonic oscillator should not look chaotic, got exponent %f", lambda)
	}
}

func TestLyapunovSpectrumLength(t *testing.T) {
	sys := &testOscillator{omega: 1.0}
	integ := integrators.NewRK4()

	spectrum := LyapunovSpectrum(sys, integ, dynamo.State{1, 0}, 0.01, 5.0, 1e-8)

	if len(spectrum) != 2 {
		t.Errorf("expected 2 exponents, got %d", len(spectrum))
	}
}

func TestPhasePortraitPointCount(t *testing.T) {
	sys := &testOscillator{omega: 1.0}
	integ := integrators.NewRK4()

	portrait := GeneratePhasePortrait(sys, integ, dynamo.State{1, 0}, 0, 1, 0.01, 1.0)
	if portrait == nil {
		t.Fatal("expected a portrait")
	}

	n := len(portrait.Points)
	if n < 95 || n > 105 {
		t.Errorf("expected roughly 100 points, got %d", n)
	}
}

func TestPhasePortraitBadIndices(t *testing.T) {
	sys := &testOscillator{omega: 1.0}
	integ := integrators.NewRK4()

	if p := GeneratePhasePortrait(sys, integ, dynamo.State{1, 0}, 0, 5, 0.01, 1.0); p != nil {
		t.Error("expected nil for out-of-range index")
	}
}

func TestPhasePortraitASCII(t *testing.T) {
	sys := &testOscillator{omega: 1.0}
	integ := integrators.NewRK4()

	portrait := GeneratePhasePortrait(sys, integ, dynamo.State{1, 0}, 0, 1, 0.01, 10.0)
	art := PhasePortraitToASCII(portrait, 40, 20)

	if art == "" {
		t.Fatal("expected non-empty ASCII art")
	}

	if PhasePortraitToASCII(nil, 40, 20) != "" {
		t.Error("nil portrait should give empty output")
	}
}

func TestPoincareSectionCrossings(t *testing.T) {
	sys := &testOscillator{omega: 1.0}
	integ := integrators.NewRK4()

	// One positive-going crossing of x=0 per 2π period.
	duration := 6 * 2 * math.Pi
	section := GeneratePoincareSection(sys, integ, dynamo.State{1, 0}, 0, 0.0, 0, 1, 0.01, duration)
	if section == nil {
		t.Fatal("expected a section")
	}

	n := len(section.Points)
	if n < 5 || n > 7 {
		t.Errorf("expected about 6 crossings, got %d", n)
	}
}

func TestSampleFieldLattice(t *testing.T) {
	sys := &testOscillator{omega: 1.0}

	samples := SampleField(sys, nil, -1, 1, -1, 1, 5, 4, 0)
	if len(samples) != 20 {
		t.Fatalf("expected 20 samples, got %d", len(samples))
	}

	for _, s := range samples {
		if math.Abs(s.DX-s.Y) > 1e-12 {
			t.Errorf("at (%f, %f) expected dx = y, got %f", s.X, s.Y, s.DX)
		}
		if math.Abs(s.DY+s.X) > 1e-12 {
			t.Errorf("at (%f, %f) expected dy = -x, got %f", s.X, s.Y, s.DY)
		}
	}
}

func TestSampleFieldBadWindow(t *testing.T) {
	sys := &testOscillator{omega: 1.0}

	if s := SampleField(sys, nil, 1, -1, 0, 1, 5, 5, 0); s != nil {
		t.Error("expected nil for inverted window")
	}
	if s := SampleField(sys, nil, -1, 1, -1, 1, 1, 5, 0); s != nil {
		t.Error("expected nil for degenerate lattice")
	}
}

func TestNullclinesOscillator(t *testing.T) {
	sys := &testOscillator{omega: 1.0}

	// d[0] = y vanishes on the x axis.
	points := Nullclines(sys, nil, -1, 1, -1, 1, 11, 0, 0)
	if len(points) == 0 {
		t.Fatal("expected nullcline points")
	}

	for _, p := range points {
		if math.Abs(p.Y) > 1e-9 {
			t.Errorf("nullcline point (%f, %f) not on the x axis", p.X, p.Y)
		}
	}
}

func TestPowerSpectrumPeak(t *testing.T) {
	const n, bin = 256, 16
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * bin * float64(i) / n)
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	peak := 0
	for i, v := range ps {
		if v > ps[peak] {
			peak = i
		}
	}
	if peak != bin {
		t.Errorf("expected peak at bin %d, got %d", bin, peak)
	}
}

func TestTrajectorySpectrum(t *testing.T) {
	sys := &testOscillator{omega: 2 * math.Pi}
	integ := integrators.NewRK4()

	ps := TrajectorySpectrum(sys, integ, dynamo.State{1, 0}, 0, 0.01, 10.0)
	if len(ps) == 0 {
		t.Fatal("expected a spectrum")
	}

	if s := TrajectorySpectrum(sys, integ, dynamo.State{1, 0}, 5, 0.01, 1.0); s != nil {
		t.Error("expected nil for out-of-range state index")
	}
}
