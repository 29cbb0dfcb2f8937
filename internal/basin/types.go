package basin

import (
	"errors"
	"fmt"

	"github.com/amaren/dynlab/internal/dynamo"
)

// MaxAttractors is the hard cap on reference points. The raster encoding
// and the 8-color palette assume labels 0..7.
const MaxAttractors = 7

// Unclassified is the label for cells whose trajectory matched no
// attractor or failed to integrate.
const Unclassified = 0

// ErrConfig is wrapped by every configuration failure; only these abort a
// run, and they do so before any integration starts.
var ErrConfig = errors.New("basin: invalid configuration")

type Point struct {
	X, Y float64
}

// Region is an axis-aligned rectangle in the (x, y) plane of state space.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Config describes one classification run. Params is passed through to
// the vector field untouched.
type Config struct {
	Region     Region
	Delta      float64 // grid spacing, both axes
	TMax       float64 // integration horizon
	Dt         float64 // fixed step size; 0 selects DefaultDt
	Attractors []Point // ordered, first-in-list wins ties
	MaxDist    float64 // match tolerance
	Workers    int     // 0 selects runtime.NumCPU()
	Params     dynamo.Params
	KeepCorner bool // disable the (0,0) palette-anchor override
}

const DefaultDt = 0.01

func (c *Config) validate() error {
	if len(c.Attractors) > MaxAttractors {
		return fmt.Errorf("%w: %d attractors, maximum is %d", ErrConfig, len(c.Attractors), MaxAttractors)
	}
	if c.Delta <= 0 {
		return fmt.Errorf("%w: delta must be positive, got %g", ErrConfig, c.Delta)
	}
	if c.TMax <= 0 {
		return fmt.Errorf("%w: tmax must be positive, got %g", ErrConfig, c.TMax)
	}
	if c.Dt < 0 {
		return fmt.Errorf("%w: dt must not be negative, got %g", ErrConfig, c.Dt)
	}
	if c.MaxDist <= 0 {
		return fmt.Errorf("%w: maxdist must be positive, got %g", ErrConfig, c.MaxDist)
	}
	if c.Region.XMax <= c.Region.XMin || c.Region.YMax <= c.Region.YMin {
		return fmt.Errorf("%w: empty region %+v", ErrConfig, c.Region)
	}
	return nil
}
