package physics

import (
	"sort"
	"testing"
)

func TestRegistryKnownModels(t *testing.T) {
	for _, name := range Names() {
		sys, err := New(name)
		if err != nil {
			t.Errorf("New(%q) returned error: %v", name, err)
			continue
		}
		if sys.StateDim() < 2 {
			t.Errorf("%s has state dim %d, expected at least 2", name, sys.StateDim())
		}
		if d, ok := sys.(Defaulter); ok {
			if len(d.DefaultState()) != sys.StateDim() {
				t.Errorf("%s default state length mismatch", name)
			}
		}
	}
}

func TestRegistryUnknownModel(t *testing.T) {
	if _, err := New("nonexistent"); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	names := Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	if len(names) != 6 {
		t.Errorf("expected 6 models, got %d", len(names))
	}
}

func TestAttractorSources(t *testing.T) {
	for _, name := range []string{"duffing", "magpend", "pendulum"} {
		sys, err := New(name)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		src, ok := sys.(AttractorSource)
		if !ok {
			t.Errorf("%s should expose attractors", name)
			continue
		}
		if len(src.Attractors()) == 0 {
			t.Errorf("%s returned no attractors", name)
		}
	}
}
