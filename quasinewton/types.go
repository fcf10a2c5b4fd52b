package quasinewton

import "errors"

// Sentinel errors returned by the minimizers.
var (
	// ErrFailed indicates the optimizer stopped without converging
	// (line-search failure, non-descent direction, invalid problem).
	ErrFailed = errors.New("quasinewton: minimization failed")

	// ErrEmptyVector indicates a zero-length start vector.
	ErrEmptyVector = errors.New("quasinewton: start vector is empty")

	// ErrBadTolerance indicates a non-positive or non-finite tolerance.
	ErrBadTolerance = errors.New("quasinewton: tolerance must be positive and finite")

	// ErrBadIterations indicates a non-positive iteration cap.
	ErrBadIterations = errors.New("quasinewton: iteration cap must be positive")
)

// Objective is a differentiable scalar function of a vector.
//
// F evaluates the function at x. G evaluates it as well, returning the same
// value F would, and writes ∇f(x) into grad (len(grad) == len(x)).
type Objective interface {
	F(x []float64) float64
	G(x, grad []float64) float64
}

// Minimizer drives an Objective from a start vector.
//
// Minimize overwrites x0 with the optimized vector and returns the objective
// value there. tol is the convergence tolerance on the gradient norm and maxIter
// caps the number of major iterations. Reaching maxIter is not a failure.
type Minimizer interface {
	Minimize(obj Objective, x0 []float64, tol float64, maxIter int) (float64, error)
}

// Minimizer conformance.
var (
	_ Minimizer = LBFGS{}
	_ Minimizer = BFGS{}
)
