package quasinewton_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nmds/quasinewton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadratic is f(x) = Σ w_i (x_i - c_i)², a smooth convex bowl.
type quadratic struct {
	center  []float64
	weights []float64
	gCalls  int
}

func (q *quadratic) F(x []float64) float64 {
	var f, d float64
	for i := range x {
		d = x[i] - q.center[i]
		f += q.weights[i] * d * d
	}
	return f
}

func (q *quadratic) G(x, grad []float64) float64 {
	q.gCalls++
	for i := range x {
		grad[i] = 2 * q.weights[i] * (x[i] - q.center[i])
	}
	return q.F(x)
}

// bounded reports zero as its infimum.
type bounded struct{ quadratic }

func (b *bounded) LowerBound() float64 { return 0 }

func newQuadratic() *quadratic {
	return &quadratic{
		center:  []float64{1, -2, 3},
		weights: []float64{1, 4, 0.5},
	}
}

// TestMinimize_Quadratic checks both methods land on the bowl's center.
func TestMinimize_Quadratic(t *testing.T) {
	methods := []struct {
		name string
		m    quasinewton.Minimizer
	}{
		{"lbfgs", quasinewton.LBFGS{Memory: 5}},
		{"lbfgs-default-memory", quasinewton.LBFGS{}},
		{"bfgs", quasinewton.BFGS{}},
	}

	for _, tc := range methods {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			q := newQuadratic()
			x := []float64{0, 0, 0}

			f, err := tc.m.Minimize(q, x, 1e-6, 200)
			require.NoError(t, err)
			assert.InDelta(t, 0, f, 1e-8)
			for i := range x {
				assert.InDelta(t, q.center[i], x[i], 1e-4, "coordinate %d", i)
			}
		})
	}
}

// TestMinimize_LowerBoundShortCircuit verifies no iterations run at the infimum.
func TestMinimize_LowerBoundShortCircuit(t *testing.T) {
	b := &bounded{quadratic: *newQuadratic()}
	x := []float64{1, -2, 3}

	f, err := quasinewton.LBFGS{}.Minimize(b, x, 1e-6, 200)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f)
	assert.Zero(t, b.gCalls, "gradient must not be evaluated at the infimum")
	assert.Equal(t, []float64{1, -2, 3}, x)
}

// TestMinimize_Validation covers the argument sentinels; x0 must stay untouched.
func TestMinimize_Validation(t *testing.T) {
	q := newQuadratic()

	_, err := quasinewton.BFGS{}.Minimize(q, nil, 1e-6, 10)
	assert.ErrorIs(t, err, quasinewton.ErrEmptyVector)

	x := []float64{5, 5, 5}
	_, err = quasinewton.BFGS{}.Minimize(q, x, 0, 10)
	assert.ErrorIs(t, err, quasinewton.ErrBadTolerance)
	_, err = quasinewton.BFGS{}.Minimize(q, x, math.Inf(1), 10)
	assert.ErrorIs(t, err, quasinewton.ErrBadTolerance)
	_, err = quasinewton.LBFGS{}.Minimize(q, x, 1e-6, 0)
	assert.ErrorIs(t, err, quasinewton.ErrBadIterations)
	assert.Equal(t, []float64{5, 5, 5}, x)

	_, err = quasinewton.LBFGS{}.Minimize(q, []float64{math.NaN(), 0, 0}, 1e-6, 10)
	assert.ErrorIs(t, err, quasinewton.ErrFailed)

	_, err = quasinewton.LBFGS{}.Minimize(nil, x, 1e-6, 10)
	assert.ErrorIs(t, err, quasinewton.ErrFailed)
}

// TestMinimizer_String pins the log names.
func TestMinimizer_String(t *testing.T) {
	assert.Equal(t, "L-BFGS(m=5)", quasinewton.LBFGS{}.String())
	assert.Equal(t, "L-BFGS(m=7)", quasinewton.LBFGS{Memory: 7}.String())
	assert.Equal(t, "BFGS", quasinewton.BFGS{}.String())
}
