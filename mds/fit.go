package mds

import (
	"fmt"

	"github.com/katalvlaran/nmds/classical"
	"github.com/katalvlaran/nmds/matrix"
	"github.com/katalvlaran/nmds/quasinewton"
)

// Fit embeds proximity with ordinal MDS, starting from classical MDS.
//
// Example:
//
//	res, err := mds.Fit(proximity, mds.WithDimension(3))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Stress, res.Quality)
func Fit(proximity [][]float64, opts ...Option) (*Result, error) {
	return FitWithInit(proximity, nil, opts...)
}

// FitWithInit embeds proximity starting from init (n×d). A nil init falls
// back to classical MDS in Options.Dimension dimensions.
func FitWithInit(proximity, init [][]float64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return FitOptions(proximity, init, o)
}

// FitOptions is FitWithInit with explicit Options.
//
// Steps:
//   - Stage 1: validate options (ErrConfiguration) and shapes (ErrInvalidInput).
//   - Stage 2: classical start when init is nil.
//   - Stage 3: rank once, then run Primary; on failure run Fallback from a
//     fresh copy of the original start vector.
//   - Stage 4: reshape, classify, log.
//
// Errors:
//   - ErrConfiguration, ErrInvalidInput (wrapping the classical or matrix cause),
//     ErrOptimization (wrapping the fallback's quasinewton.ErrFailed).
func FitOptions(proximity, init [][]float64, o Options) (*Result, error) {
	// Stage 1: configuration and proximity shape.
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquareRows(proximity); err != nil {
		return nil, fmt.Errorf("%w: proximity: %w", ErrInvalidInput, err)
	}
	n := len(proximity)

	// Stage 2: starting configuration.
	if init == nil {
		start, err := classical.Fit(proximity, o.Dimension)
		if err != nil {
			return nil, fmt.Errorf("%w: classical start: %w", ErrInvalidInput, err)
		}
		init = start.Coordinates
	}
	dim, err := validateInit(init, n)
	if err != nil {
		return nil, err
	}
	x0 := flatten(init, dim)

	// Stage 3: rank structures and minimization.
	ranking, err := NewRanking(proximity)
	if err != nil {
		return nil, err
	}
	obj := NewObjective(ranking, dim)

	res := &Result{}
	x := append([]float64(nil), x0...)
	stress, err := o.Primary.Minimize(obj, x, o.Tolerance, o.MaxIterations)
	res.Attempts = append(res.Attempts, Attempt{Method: methodName(o.Primary), Stress: stress, Err: err})
	if err != nil {
		o.Logger.Warn().
			Err(err).
			Str("method", methodName(o.Primary)).
			Str("fallback", methodName(o.Fallback)).
			Msg("primary minimizer failed, restarting from the initial configuration")

		x = append(x[:0], x0...)
		stress, err = o.Fallback.Minimize(obj, x, o.Tolerance, o.MaxIterations)
		res.Attempts = append(res.Attempts, Attempt{Method: methodName(o.Fallback), Stress: stress, Err: err})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOptimization, err)
		}
	}

	// Stage 4: reshape and classify.
	res.Stress = stress
	res.Coordinates = reshape(x, n, dim)
	res.Quality = Classify(stress)
	o.Logger.Info().
		Int("objects", n).
		Int("dimension", dim).
		Float64("stress", stress).
		Stringer("quality", res.Quality).
		Msg("ordinal MDS fit")

	return res, nil
}

// validateInit checks init has n rows of one common, positive width and
// returns that width.
func validateInit(init [][]float64, n int) (int, error) {
	if len(init) != n {
		return 0, fmt.Errorf("%w: initial configuration has %d rows, proximity has %d", ErrInvalidInput, len(init), n)
	}
	dim := len(init[0])
	if dim == 0 {
		return 0, fmt.Errorf("%w: initial configuration has no columns", ErrInvalidInput)
	}
	for i, row := range init {
		if len(row) != dim {
			return 0, fmt.Errorf("%w: initial configuration row %d has %d columns, want %d", ErrInvalidInput, i, len(row), dim)
		}
	}

	return dim, nil
}

// flatten copies rows into a row-major vector.
func flatten(rows [][]float64, dim int) []float64 {
	x := make([]float64, 0, len(rows)*dim)
	for _, row := range rows {
		x = append(x, row...)
	}

	return x
}

// reshape splits a row-major vector into n rows of dim.
func reshape(x []float64, n, dim int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dim)
		copy(out[i], x[i*dim:(i+1)*dim])
	}

	return out
}

func methodName(m quasinewton.Minimizer) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%T", m)
}
