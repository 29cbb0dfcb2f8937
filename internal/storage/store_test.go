package storage

import (
	"testing"

	"github.com/amaren/dynlab/internal/basin"
)

func testConfig() basin.Config {
	return basin.Config{
		Region:     basin.Region{XMin: -1, XMax: 1, YMin: -1, YMax: 1},
		Delta:      1.0,
		TMax:       10,
		Attractors: []basin.Point{{X: 0, Y: 0}},
		MaxDist:    0.5,
	}
}

func testRaster() *basin.Raster {
	r := basin.NewRaster(3, 3)
	r.Set(1, 1, 1)
	r.Set(2, 2, 1)
	return r
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := store.Save("magpend", "rk4", testConfig(), testRaster())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected a run ID")
	}

	meta, err := store.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Model != "magpend" || meta.Integrator != "rk4" {
		t.Errorf("metadata mismatch: %s / %s", meta.Model, meta.Integrator)
	}
	if meta.NX != 3 || meta.NY != 3 {
		t.Errorf("expected 3x3 raster, got %dx%d", meta.NX, meta.NY)
	}
	if len(meta.Attractors) != 1 {
		t.Errorf("expected 1 attractor, got %d", len(meta.Attractors))
	}
	if len(meta.Counts) != 2 || meta.Counts[0] != 7 || meta.Counts[1] != 2 {
		t.Errorf("unexpected counts %v", meta.Counts)
	}
}

func TestLoadRaster(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := store.Save("duffing", "euler", testConfig(), testRaster())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raster, err := store.LoadRaster(runID)
	if err != nil {
		t.Fatalf("load raster failed: %v", err)
	}

	if raster.NX != 3 || raster.NY != 3 {
		t.Fatalf("expected 3x3 raster, got %dx%d", raster.NX, raster.NY)
	}
	if raster.At(1, 1) != 1 || raster.At(2, 2) != 1 {
		t.Error("labels not preserved")
	}
	if raster.At(0, 0) != 0 {
		t.Errorf("expected label 0 at origin, got %d", raster.At(0, 0))
	}
}

func TestList(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected empty store, got %d runs", len(runs))
	}

	if _, err := store.Save("magpend", "rk4", testConfig(), testRaster()); err != nil {
		t.Fatal(err)
	}

	runs, err = store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Model != "magpend" {
		t.Errorf("unexpected model %s", runs[0].Model)
	}
}

func TestListMissingBaseDir(t *testing.T) {
	store := New(t.TempDir() + "/never-created")

	runs, err := store.List()
	if err != nil {
		t.Fatalf("expected no error for missing base dir, got %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadUnknownRun(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load("no-such-run"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, err := store.LoadRaster("no-such-run"); err == nil {
		t.Error("expected error for unknown run raster")
	}
}
