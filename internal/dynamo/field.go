package dynamo

import "fmt"

// VectorField is the single accepted callable signature for a flow:
// given state, parameters, and time it returns the state derivative.
type VectorField func(x State, p Params, t float64) State

// FieldSystem wraps a bare VectorField as a System.
type FieldSystem struct {
	f   VectorField
	dim int
}

// NewFieldSystem validates the callable up front so a malformed field is
// rejected before any integration starts.
func NewFieldSystem(f VectorField, dim int) (*FieldSystem, error) {
	if f == nil {
		return nil, fmt.Errorf("dynamo: %w: nil vector field", ErrBadField)
	}
	if dim < 1 {
		return nil, fmt.Errorf("dynamo: %w: state dimension %d", ErrBadField, dim)
	}
	return &FieldSystem{f: f, dim: dim}, nil
}

func (s *FieldSystem) Derive(x State, p Params, t float64) State { return s.f(x, p, t) }
func (s *FieldSystem) StateDim() int                             { return s.dim }
