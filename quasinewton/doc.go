// Package quasinewton minimizes differentiable scalar functions of a vector
// with gonum's quasi-Newton methods.
//
// Two minimizers share one contract (Minimizer):
//
//   - LBFGS: limited-memory BFGS keeping the last Memory update pairs.
//   - BFGS: full inverse-Hessian BFGS, O(n²) memory per iteration.
//
// Both mutate the start vector in place to the best location found and return
// the objective value there. Failures (line-search breakdown, non-descent
// directions, bad input) are reported as errors wrapping ErrFailed so callers
// can degrade to another method with errors.Is.
//
//	x := []float64{1, 1}
//	f, err := quasinewton.LBFGS{Memory: 5}.Minimize(obj, x, 1e-6, 200)
package quasinewton
