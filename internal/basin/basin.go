package basin

import (
	"context"
	"fmt"

	"github.com/amaren/dynlab/internal/dynamo"
)

// Classifier runs the single-pass pipeline grid -> integrate -> classify
// -> raster. Integrators carry scratch buffers, so the classifier takes a
// factory and gives each worker its own instance.
type Classifier struct {
	sys      dynamo.System
	newInteg func() dynamo.Integrator
	cfg      Config
}

func New(sys dynamo.System, newInteg func() dynamo.Integrator, cfg Config) *Classifier {
	return &Classifier{sys: sys, newInteg: newInteg, cfg: cfg}
}

// Run classifies every grid point and returns the label raster. The only
// hard failure is a configuration error, surfaced before any integration;
// individual trajectories that blow up or panic degrade to Unclassified.
func (c *Classifier) Run(ctx context.Context) (*Raster, error) {
	return c.run(ctx, nil)
}

// RunObserved is Run with a per-cell callback. observe is invoked from
// worker goroutines as cells complete, in no particular order; it must be
// safe for concurrent use.
func (c *Classifier) RunObserved(ctx context.Context, observe func(i, j, label int)) (*Raster, error) {
	return c.run(ctx, observe)
}

func (c *Classifier) run(ctx context.Context, observe func(i, j, label int)) (*Raster, error) {
	if err := c.cfg.validate(); err != nil {
		return nil, err
	}
	if c.sys == nil || c.newInteg == nil {
		return nil, fmt.Errorf("%w: nil system or integrator factory", ErrConfig)
	}
	dim := c.sys.StateDim()
	if dim < 2 {
		return nil, fmt.Errorf("%w: state dimension %d, need at least 2", ErrConfig, dim)
	}

	grid, err := NewGrid(c.cfg.Region, c.cfg.Delta)
	if err != nil {
		return nil, err
	}

	dt := c.cfg.Dt
	if dt == 0 {
		dt = DefaultDt
	}

	n := grid.Len()
	labels := make([]int, n)

	// Each worker owns a disjoint index range of labels, so the writes
	// need no synchronization.
	dynamo.ParallelFor(n, c.cfg.Workers, 16, func(start, end int) {
		integ := c.newInteg()
		for k := start; k < end; k++ {
			select {
			case <-ctx.Done():
				return
			default:
			}

			terminal := c.integrate(integ, grid.Lift(k, dim), dt)
			labels[k] = ClassifyTerminal(terminal, c.cfg.Attractors, c.cfg.MaxDist)

			if observe != nil {
				i, j := grid.Cell(k)
				observe(i, j, labels[k])
			}
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raster := NewRaster(grid.NX, grid.NY)
	copy(raster.cells, labels)
	if !c.cfg.KeepCorner {
		raster.ForceCorner()
	}
	return raster, nil
}

// integrate advances one initial condition to the horizon and returns the
// terminal state, or nil when the trajectory fails. A panicking vector
// field is contained here so one bad cell cannot take down the batch.
func (c *Classifier) integrate(integ dynamo.Integrator, x0 dynamo.State, dt float64) (terminal dynamo.State) {
	defer func() {
		if recover() != nil {
			terminal = nil
		}
	}()

	steps := int(c.cfg.TMax/dt + 0.5)
	x := x0
	t := 0.0
	for i := 0; i < steps; i++ {
		x = integ.Step(c.sys, x, c.cfg.Params, t, dt)
		if !x.IsValid() {
			return nil
		}
		t += dt
	}
	return x
}
