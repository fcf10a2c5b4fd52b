package mds_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nmds/mds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generic returns a 5-object proximity with distinct dissimilarities and a
// 2-D configuration that does not reproduce their order.
func generic() ([][]float64, []float64) {
	const n, dim = 5, 2
	p := make([][]float64, n)
	for i := range p {
		p[i] = make([]float64, n)
		for j := range p[i] {
			if i != j {
				p[i][j] = math.Abs(float64(i-j)) + 0.1*math.Pow(float64(i+j), 1.5)
			}
		}
	}
	x := make([]float64, n*dim)
	for i := 0; i < n; i++ {
		for c := 0; c < dim; c++ {
			x[i*dim+c] = math.Cos(1.7*float64(i)+0.9*float64(c)) * (1 + 0.3*float64(i))
		}
	}
	return p, x
}

func newObjective(t *testing.T, p [][]float64, dim int) *mds.Objective {
	t.Helper()
	r, err := mds.NewRanking(p)
	require.NoError(t, err)
	return mds.NewObjective(r, dim)
}

// TestObjective_GradientMatchesFiniteDifferences checks G against central differences.
func TestObjective_GradientMatchesFiniteDifferences(t *testing.T) {
	p, x := generic()
	obj := newObjective(t, p, 2)

	grad := make([]float64, len(x))
	stress := obj.G(x, grad)
	assert.InDelta(t, 0.33643536, stress, 1e-6)
	assert.Equal(t, stress, obj.F(x), "F and G must agree")

	const h = 1e-5
	xp := make([]float64, len(x))
	xm := make([]float64, len(x))
	for i := range x {
		copy(xp, x)
		copy(xm, x)
		xp[i] += h
		xm[i] -= h
		fd := (obj.F(xp) - obj.F(xm)) / (2 * h)
		assert.InDelta(t, fd, grad[i], 1e-7, "coordinate %d", i)
	}
}

// TestObjective_StressBounded evaluates a handful of configurations.
func TestObjective_StressBounded(t *testing.T) {
	p, x := generic()
	obj := newObjective(t, p, 2)

	for scale := 1; scale <= 5; scale++ {
		y := make([]float64, len(x))
		for i := range x {
			y[i] = x[i]*float64(scale) + math.Sin(float64(i*scale))
		}
		s := obj.F(y)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}
}

// TestObjective_ZeroStress uses collinear points whose distances follow the ranks exactly.
func TestObjective_ZeroStress(t *testing.T) {
	p := [][]float64{
		{0, 1, 2, 3},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{3, 2, 1, 0},
	}
	obj := newObjective(t, p, 2)
	x := []float64{0, 0, 1, 0, 2, 0, 3, 0}

	assert.Equal(t, 0.0, obj.F(x))
	grad := []float64{9, 9, 9, 9, 9, 9, 9, 9}
	assert.Equal(t, 0.0, obj.G(x, grad))
	assert.Equal(t, make([]float64, len(x)), grad)
	assert.Equal(t, obj.Fitted(), obj.Disparities())
	assert.Equal(t, 0.0, obj.LowerBound())
}

// TestObjective_Diagnostics checks the rank-order buffers after an evaluation.
func TestObjective_Diagnostics(t *testing.T) {
	p, x := generic()
	obj := newObjective(t, p, 2)
	obj.F(x)

	fitted, disp := obj.Fitted(), obj.Disparities()
	require.Len(t, fitted, 10)
	require.Len(t, disp, 10)
	assert.InDeltaSlice(t, mds.IsotonicFit(fitted), disp, 1e-12)
	for k := 1; k < len(disp); k++ {
		assert.LessOrEqual(t, disp[k-1], disp[k])
	}

	fitted[0] = -1
	assert.NotEqual(t, -1.0, obj.Fitted()[0], "Fitted must return a copy")
}

// TestObjective_DegenerateConfiguration: coincident points propagate NaN, not panic.
func TestObjective_DegenerateConfiguration(t *testing.T) {
	p, _ := generic()
	obj := newObjective(t, p, 2)
	x := make([]float64, 10)

	assert.True(t, math.IsNaN(obj.F(x)))
	grad := make([]float64, 10)
	assert.True(t, math.IsNaN(obj.G(x, grad)))
}

// TestObjective_NoiseFloorBoundary: a one-ulp rank violation is rounding noise,
// a 1e-6 violation is a real misfit.
func TestObjective_NoiseFloorBoundary(t *testing.T) {
	p := [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	}
	obj := newObjective(t, p, 2)

	// d(0,2) = b sits just below d(0,1) = 1 although its rank is higher.
	b := math.Nextafter(1, 0)
	x := []float64{0, 0, 1, 0, -b, 0}
	assert.Equal(t, 0.0, obj.F(x))
	grad := make([]float64, len(x))
	assert.Equal(t, 0.0, obj.G(x, grad))
	assert.Equal(t, make([]float64, len(x)), grad)
	assert.Equal(t, mds.Perfect, mds.Classify(obj.F(x)))

	x[4] = -(1 - 1e-6)
	s := obj.G(x, grad)
	assert.InDelta(t, 2.886752789e-7, s, 1e-15)
	assert.NotEqual(t, mds.Perfect, mds.Classify(s))
	assert.NotEqual(t, make([]float64, len(x)), grad)
}
