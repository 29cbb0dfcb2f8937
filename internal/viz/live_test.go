package viz

import (
	"testing"
	"time"

	"github.com/amaren/dynlab/internal/basin"
	"github.com/amaren/dynlab/internal/dynamo"
)

type stillField struct{}

func (s *stillField) StateDim() int { return 2 }
func (s *stillField) Derive(x dynamo.State, _ dynamo.Params, _ float64) dynamo.State {
	return make(dynamo.State, len(x))
}

type stepper struct{}

func (e *stepper) Step(sys dynamo.System, x dynamo.State, p dynamo.Params, t, dt float64) dynamo.State {
	dx := sys.Derive(x, p, t)
	out := make(dynamo.State, len(x))
	for i := range x {
		out[i] = x[i] + dt*dx[i]
	}
	return out
}

func TestLiveCancelReleasesRun(t *testing.T) {
	// 41x41 cells, well past the update channel's buffer, and nothing
	// draining it: the run must still unwind after cancellation.
	cfg := basin.Config{
		Region:     basin.Region{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
		Delta:      0.05,
		TMax:       0.5,
		Dt:         0.1,
		Attractors: []basin.Point{{X: 0, Y: 0}},
		MaxDist:    0.5,
	}
	clf := basin.New(&stillField{}, func() dynamo.Integrator { return &stepper{} }, cfg)

	m, err := NewLive("still", clf, cfg)
	if err != nil {
		t.Fatalf("NewLive failed: %v", err)
	}

	m.Init()
	m.cancel()

	select {
	case <-m.runDone:
	case <-time.After(5 * time.Second):
		t.Fatal("classification still running after cancel")
	}
}

func TestLiveViewProgress(t *testing.T) {
	cfg := basin.Config{
		Region:     basin.Region{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
		Delta:      1.0,
		TMax:       0.5,
		Dt:         0.1,
		Attractors: []basin.Point{{X: 0, Y: 0}},
		MaxDist:    0.5,
	}
	clf := basin.New(&stillField{}, func() dynamo.Integrator { return &stepper{} }, cfg)

	m, err := NewLive("still", clf, cfg)
	if err != nil {
		t.Fatalf("NewLive failed: %v", err)
	}

	if m.total != 9 {
		t.Errorf("expected 9 cells total, got %d", m.total)
	}

	updated, _ := m.Update(cellMsg{i: 1, j: 1, label: 1})
	lm := updated.(*LiveModel)
	if lm.done != 1 {
		t.Errorf("expected 1 done cell, got %d", lm.done)
	}
	if lm.View() == "" {
		t.Error("expected a non-empty view")
	}
}
