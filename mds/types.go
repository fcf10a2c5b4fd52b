package mds

import (
	"errors"

	"github.com/katalvlaran/nmds/quasinewton"
	"github.com/rs/zerolog"
)

// Sentinel errors returned by the ordinal MDS driver.
var (
	// ErrConfiguration indicates an invalid option or a malformed property value.
	ErrConfiguration = errors.New("mds: invalid configuration")

	// ErrInvalidInput indicates a non-square proximity matrix or an initial
	// configuration whose shape does not match it.
	ErrInvalidInput = errors.New("mds: invalid input")

	// ErrOptimization indicates that both the primary and the fallback
	// minimizer failed. The fallback's cause is wrapped alongside it.
	ErrOptimization = errors.New("mds: optimization failed")
)

// Options configures an ordinal MDS fit.
//
// Dimension     – target dimension d, must be ≥ 2. When an initial
// configuration is supplied its column count is used instead.
// Tolerance     – convergence tolerance passed to the minimizer, > 0.
// MaxIterations – iteration cap passed to the minimizer, > 0.
// Primary       – first minimizer tried (default L-BFGS, memory 5).
// Fallback      – minimizer tried once, from the original start, if Primary fails.
// Logger        – receives the fallback warning and the quality line.
type Options struct {
	Dimension     int
	Tolerance     float64
	MaxIterations int
	Primary       quasinewton.Minimizer
	Fallback      quasinewton.Minimizer
	Logger        zerolog.Logger
}

// Option represents a functional option for configuring a fit.
type Option func(*Options)

// Attempt records one minimizer run.
type Attempt struct {
	Method string  // minimizer name, e.g. "L-BFGS(m=5)"
	Stress float64 // final stress; zero when Err != nil
	Err    error   // nil on success
}

// Result is the outcome of a successful fit.
type Result struct {
	// Stress is Kruskal's stress of Coordinates, in [0, 1].
	Stress float64

	// Coordinates is n×d, one row per object.
	Coordinates [][]float64

	// Quality classifies Stress. Advisory only.
	Quality Quality

	// Attempts lists the minimizer runs in order (one or two entries).
	Attempts []Attempt
}
