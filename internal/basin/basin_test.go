package basin

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/onsi/gomega"

	"github.com/amaren/dynlab/internal/dynamo"
)

// zeroField is a flow with no motion: every trajectory stays put.
type zeroField struct{ dim int }

func (z *zeroField) StateDim() int { return z.dim }
func (z *zeroField) Derive(x dynamo.State, _ dynamo.Params, _ float64) dynamo.State {
	return make(dynamo.State, len(x))
}

// panicField panics when started exactly at (1, 1).
type panicField struct{}

func (p *panicField) StateDim() int { return 2 }
func (p *panicField) Derive(x dynamo.State, _ dynamo.Params, _ float64) dynamo.State {
	if x[0] == 1 && x[1] == 1 {
		panic("bad cell")
	}
	return make(dynamo.State, len(x))
}

// eulerLike is a minimal fixed-step integrator for tests.
type eulerLike struct{}

func (e *eulerLike) Step(sys dynamo.System, x dynamo.State, p dynamo.Params, t, dt float64) dynamo.State {
	dx := sys.Derive(x, p, t)
	out := make(dynamo.State, len(x))
	for i := range x {
		out[i] = x[i] + dt*dx[i]
	}
	return out
}

func newTestIntegrator() dynamo.Integrator { return &eulerLike{} }

func threeByThree() Config {
	return Config{
		Region:     Region{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
		Delta:      1.0,
		TMax:       1.0,
		Dt:         0.1,
		Attractors: []Point{{0, 0}},
		MaxDist:    0.5,
	}
}

func TestRunZeroFieldEndToEnd(t *testing.T) {
	g := gomega.NewWithT(t)

	clf := New(&zeroField{dim: 2}, newTestIntegrator, threeByThree())
	raster, err := clf.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(raster.NX).To(gomega.Equal(3))
	g.Expect(raster.NY).To(gomega.Equal(3))

	// Only the center point (0,0) is within 0.5 of the attractor.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0
			if i == 1 && j == 1 {
				want = 1
			}
			g.Expect(raster.At(i, j)).To(gomega.Equal(want), "cell (%d,%d)", i, j)
		}
	}
}

func TestRunTooManyAttractors(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := threeByThree()
	cfg.Attractors = make([]Point, MaxAttractors+1)

	clf := New(&zeroField{dim: 2}, newTestIntegrator, cfg)
	raster, err := clf.Run(context.Background())
	g.Expect(err).To(gomega.HaveOccurred())
	g.Expect(errors.Is(err, ErrConfig)).To(gomega.BeTrue())
	g.Expect(raster).To(gomega.BeNil())
}

func TestRunMaxAttractorsAccepted(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := threeByThree()
	cfg.Attractors = make([]Point, MaxAttractors)

	clf := New(&zeroField{dim: 2}, newTestIntegrator, cfg)
	_, err := clf.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
}

func TestRunCornerOverride(t *testing.T) {
	g := gomega.NewWithT(t)

	// Generous tolerance: every cell, including the corner, matches.
	cfg := threeByThree()
	cfg.MaxDist = 10

	clf := New(&zeroField{dim: 2}, newTestIntegrator, cfg)
	raster, err := clf.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	g.Expect(raster.At(0, 0)).To(gomega.Equal(Unclassified), "corner must be forced to 0")
	g.Expect(raster.At(1, 0)).To(gomega.Equal(1))
	g.Expect(raster.At(0, 1)).To(gomega.Equal(1))
}

func TestRunKeepCorner(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := threeByThree()
	cfg.MaxDist = 10
	cfg.KeepCorner = true

	clf := New(&zeroField{dim: 2}, newTestIntegrator, cfg)
	raster, err := clf.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(raster.At(0, 0)).To(gomega.Equal(1))
}

func TestRunLabelsInRange(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := threeByThree()
	cfg.Attractors = []Point{{0, 0}, {1, 1}, {-1, -1}}
	cfg.Delta = 0.25

	clf := New(&zeroField{dim: 2}, newTestIntegrator, cfg)
	raster, err := clf.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	for _, label := range raster.Cells() {
		g.Expect(label).To(gomega.BeNumerically(">=", 0))
		g.Expect(label).To(gomega.BeNumerically("<=", len(cfg.Attractors)))
	}
}

func TestRunDeterministic(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := threeByThree()
	cfg.Delta = 0.1
	cfg.Workers = 4

	first, err := New(&zeroField{dim: 2}, newTestIntegrator, cfg).Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	cfg.Workers = 1
	second, err := New(&zeroField{dim: 2}, newTestIntegrator, cfg).Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	g.Expect(first.Cells()).To(gomega.Equal(second.Cells()))
}

func TestRunPanickingFieldIsolated(t *testing.T) {
	g := gomega.NewWithT(t)

	cfg := threeByThree()

	clf := New(&panicField{}, newTestIntegrator, cfg)
	raster, err := clf.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	// Cell (2,2) starts at (1,1) and panics: label 0. Everything else
	// behaves like the zero field.
	g.Expect(raster.At(2, 2)).To(gomega.Equal(Unclassified))
	g.Expect(raster.At(1, 1)).To(gomega.Equal(1))
}

func TestRunLiftedState(t *testing.T) {
	g := gomega.NewWithT(t)

	// A 3-dimensional flow still classifies on the (x, y) projection.
	clf := New(&zeroField{dim: 3}, newTestIntegrator, threeByThree())
	raster, err := clf.Run(context.Background())
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(raster.At(1, 1)).To(gomega.Equal(1))
}

func TestRunObservedSeesEveryCell(t *testing.T) {
	g := gomega.NewWithT(t)

	var seen int64

	clf := New(&zeroField{dim: 2}, newTestIntegrator, threeByThree())
	_, err := clf.RunObserved(context.Background(), func(i, j, label int) {
		atomic.AddInt64(&seen, 1)
	})
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(seen).To(gomega.Equal(int64(9)))
}

func TestRunBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero delta", func(c *Config) { c.Delta = 0 }},
		{"negative tmax", func(c *Config) { c.TMax = -1 }},
		{"zero maxdist", func(c *Config) { c.MaxDist = 0 }},
		{"empty region", func(c *Config) { c.Region.XMax = c.Region.XMin }},
	}

	for _, tt := range tests {
		cfg := threeByThree()
		tt.mutate(&cfg)

		_, err := New(&zeroField{dim: 2}, newTestIntegrator, cfg).Run(context.Background())
		if !errors.Is(err, ErrConfig) {
			t.Errorf("%s: expected config error, got %v", tt.name, err)
		}
	}
}
