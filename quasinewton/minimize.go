package quasinewton

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

const (
	// DefaultMemory is the L-BFGS history size used when LBFGS.Memory <= 0.
	DefaultMemory = 5

	// convergeIterations is how many major iterations may pass with a relative
	// improvement below tol before the run is declared converged.
	convergeIterations = 20
)

// LowerBounded is implemented by objectives with a known infimum. A start
// vector whose value already equals (or is below) the bound is returned
// without running the method, since no descent is possible from there.
type LowerBounded interface {
	LowerBound() float64
}

// LBFGS is the limited-memory quasi-Newton method.
// Memory is the number of stored update pairs (DefaultMemory when <= 0).
type LBFGS struct {
	Memory int
}

// Minimize implements Minimizer.
func (m LBFGS) Minimize(obj Objective, x0 []float64, tol float64, maxIter int) (float64, error) {
	memory := m.Memory
	if memory <= 0 {
		memory = DefaultMemory
	}

	return run(m.String(), &optimize.LBFGS{Store: memory}, obj, x0, tol, maxIter)
}

// String names the method for logs.
func (m LBFGS) String() string {
	memory := m.Memory
	if memory <= 0 {
		memory = DefaultMemory
	}

	return fmt.Sprintf("L-BFGS(m=%d)", memory)
}

// BFGS is the full-memory quasi-Newton method.
type BFGS struct{}

// Minimize implements Minimizer.
func (BFGS) Minimize(obj Objective, x0 []float64, tol float64, maxIter int) (float64, error) {
	return run(BFGS{}.String(), &optimize.BFGS{}, obj, x0, tol, maxIter)
}

// String names the method for logs.
func (BFGS) String() string { return "BFGS" }

// run validates the arguments, adapts obj to a gonum Problem and maps the
// outcome onto the Minimizer contract. x0 is written only on success.
func run(name string, method optimize.Method, obj Objective, x0 []float64, tol float64, maxIter int) (float64, error) {
	if err := validate(obj, x0, tol, maxIter); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	if lb, ok := obj.(LowerBounded); ok {
		if f := obj.F(x0); f <= lb.LowerBound() {
			return f, nil
		}
	}

	problem := optimize.Problem{
		Func: obj.F,
		Grad: func(grad, x []float64) {
			obj.G(x, grad)
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: tol,
		MajorIterations:   maxIter,
		Converger: &optimize.FunctionConverge{
			Relative:   tol,
			Iterations: convergeIterations,
		},
	}

	result, err := optimize.Minimize(problem, x0, settings, method)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %v", name, ErrFailed, err)
	}
	if result == nil || result.Status == optimize.Failure {
		return 0, fmt.Errorf("%s: %w: status %v", name, ErrFailed, statusOf(result))
	}

	copy(x0, result.X)

	return result.F, nil
}

// validate checks the arguments shared by every method.
func validate(obj Objective, x0 []float64, tol float64, maxIter int) error {
	if obj == nil {
		return fmt.Errorf("%w: nil objective", ErrFailed)
	}
	if len(x0) == 0 {
		return ErrEmptyVector
	}
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return ErrBadTolerance
	}
	if maxIter <= 0 {
		return ErrBadIterations
	}
	if floats.HasNaN(x0) {
		return fmt.Errorf("%w: start vector contains NaN", ErrFailed)
	}

	return nil
}

func statusOf(r *optimize.Result) optimize.Status {
	if r == nil {
		return optimize.Failure
	}

	return r.Status
}
