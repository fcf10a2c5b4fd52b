package mds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/nmds/quasinewton"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultDimension is the target dimension when none is given.
	DefaultDimension = 2

	// DefaultTolerance is the minimizer convergence tolerance.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps the minimizer's major iterations.
	DefaultMaxIterations = 200

	// DefaultMemory is the L-BFGS history size of the primary minimizer.
	DefaultMemory = 5
)

// DefaultOptions returns the options used by Fit when no Option is given:
// d = 2, tolerance 1e-4, 200 iterations, L-BFGS(m=5) then BFGS, global logger.
func DefaultOptions() Options {
	return Options{
		Dimension:     DefaultDimension,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Primary:       quasinewton.LBFGS{Memory: DefaultMemory},
		Fallback:      quasinewton.BFGS{},
		Logger:        log.Logger,
	}
}

// WithDimension sets the target dimension (must be ≥ 2).
func WithDimension(d int) Option {
	return func(o *Options) {
		o.Dimension = d
	}
}

// WithTolerance sets the minimizer convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithMaxIterations sets the minimizer iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithPrimary replaces the primary minimizer.
func WithPrimary(m quasinewton.Minimizer) Option {
	return func(o *Options) {
		o.Primary = m
	}
}

// WithFallback replaces the fallback minimizer.
func WithFallback(m quasinewton.Minimizer) Option {
	return func(o *Options) {
		o.Fallback = m
	}
}

// WithLogger routes fit logging to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Validate reports the first invalid field, wrapped in ErrConfiguration.
func (o Options) Validate() error {
	switch {
	case o.Dimension < 2:
		return fmt.Errorf("%w: dimension %d < 2", ErrConfiguration, o.Dimension)
	case o.Tolerance <= 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0):
		return fmt.Errorf("%w: tolerance %g must be positive and finite", ErrConfiguration, o.Tolerance)
	case o.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d must be positive", ErrConfiguration, o.MaxIterations)
	case o.Primary == nil:
		return fmt.Errorf("%w: nil primary minimizer", ErrConfiguration)
	case o.Fallback == nil:
		return fmt.Errorf("%w: nil fallback minimizer", ErrConfiguration)
	}

	return nil
}
