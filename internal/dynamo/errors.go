package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrUnstable indicates the integration became numerically unstable.
	ErrUnstable = errors.New("dynamo: integration unstable (state diverged)")

	// ErrStepTooSmall indicates the adaptive timestep collapsed.
	ErrStepTooSmall = errors.New("dynamo: adaptive timestep below minimum")

	// ErrBadField indicates a vector field that cannot be used as given.
	ErrBadField = errors.New("dynamo: invalid vector field")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("dynamo: dimension mismatch between state and system")
)

// SimError wraps an error with integration context.
type SimError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimError) Error() string { return e.Wrapped.Error() }
func (e *SimError) Unwrap() error { return e.Wrapped }
