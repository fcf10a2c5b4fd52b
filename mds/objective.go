package mds

import (
	"math"

	"github.com/katalvlaran/nmds/quasinewton"
)

const (
	// epsilon is the float64 unit roundoff.
	epsilon = 0x1p-52

	// roundingSlack scales the noise floor of the isotonic prefix sums.
	roundingSlack = 4
)

var (
	_ quasinewton.Objective    = (*Objective)(nil)
	_ quasinewton.LowerBounded = (*Objective)(nil)
)

// Objective is Kruskal's stress of a flattened n×dim configuration against a
// fixed Ranking, with its analytic gradient.
//
// Every call re-derives all buffers from x; only the permutations persist.
// Stress whose residual lies within the rounding noise of the prefix sums
// (stress ≤ 4·p·ε) is reported as exactly 0 with a zero gradient.
// tstar == 0 or a zero fitted distance yield NaN/±Inf, not an error.
type Objective struct {
	n, dim, pairs int
	order         []int
	inverse       []int
	floor         float64 // squared stress noise floor

	d  []float64 // fitted distances, pair order
	y  []float64 // fitted distances, rank order
	yc []float64 // prefix sums of y, yc[0] = 0
	yf []float64 // disparities (isotonic fit of y)
}

// NewObjective allocates the working buffers for r in dim dimensions.
func NewObjective(r *Ranking, dim int) *Objective {
	p := r.Pairs()
	noise := roundingSlack * float64(p) * epsilon

	return &Objective{
		n:       r.N,
		dim:     dim,
		pairs:   p,
		order:   r.Order,
		inverse: r.Inverse,
		floor:   noise * noise,
		d:       make([]float64, p),
		y:       make([]float64, p),
		yc:      make([]float64, p+1),
		yf:      make([]float64, p),
	}
}

// Dimension returns the embedding dimension.
func (o *Objective) Dimension() int { return o.dim }

// LowerBound implements quasinewton.LowerBounded: stress is never negative.
func (o *Objective) LowerBound() float64 { return 0 }

// F returns the stress of x.
func (o *Objective) F(x []float64) float64 {
	stress, _, _ := o.evaluate(x)

	return stress
}

// G fills grad with ∂stress/∂x and returns the same stress as F.
//
// For point u and channel c the sum runs over every s ≠ u whose pair rank
// k is tracked:
//
//	((y[k]-ŷ[k])/S* - y[k]/T*) · (x[u,c]-x[s,c]) / y[k]
//
// and is scaled by the stress.
func (o *Objective) G(x, grad []float64) float64 {
	stress, sstar, tstar := o.evaluate(x)
	if sstar == 0 {
		for i := range grad {
			grad[i] = 0
		}
		return stress
	}

	var (
		u, s, c, k int
		sum, diff  float64
		sign       float64
	)
	for u = 0; u < o.n; u++ {
		for c = 0; c < o.dim; c++ {
			sum = 0
			for s = 0; s < o.n; s++ {
				if s == u {
					continue
				}
				k = o.inverse[PairIndex(o.n, u, s)-1]
				if k >= o.pairs {
					continue
				}
				diff = x[u*o.dim+c] - x[s*o.dim+c]
				sign = 1
				if diff < 0 {
					sign = -1
				}
				sum += ((o.y[k]-o.yf[k])/sstar - o.y[k]/tstar) * sign * math.Abs(diff) / o.y[k]
			}
			grad[u*o.dim+c] = sum * stress
		}
	}

	return stress
}

// Fitted returns the fitted distances of the last evaluation, in rank order.
func (o *Objective) Fitted() []float64 {
	out := make([]float64, o.pairs)
	copy(out, o.y)

	return out
}

// Disparities returns the isotonic fit of the last evaluation, in rank order.
func (o *Objective) Disparities() []float64 {
	out := make([]float64, o.pairs)
	copy(out, o.yf)

	return out
}

// evaluate runs the distance, rank and isotonic steps and returns the
// stress together with S* = Σ(y-ŷ)² and T* = Σy².
func (o *Objective) evaluate(x []float64) (stress, sstar, tstar float64) {
	var (
		i, j, c, k int
		sum, diff  float64
	)
	for i = 0; i < o.n; i++ {
		for j = i + 1; j < o.n; j++ {
			sum = 0
			for c = 0; c < o.dim; c++ {
				diff = x[i*o.dim+c] - x[j*o.dim+c]
				sum += diff * diff
			}
			o.d[k] = math.Sqrt(sum)
			k++
		}
	}
	for k = 0; k < o.pairs; k++ {
		o.y[k] = o.d[o.order[k]]
	}

	Isotonic(o.y, o.yc, o.yf)

	for k = 0; k < o.pairs; k++ {
		diff = o.y[k] - o.yf[k]
		sstar += diff * diff
		tstar += o.y[k] * o.y[k]
	}
	if sstar <= o.floor*tstar {
		sstar = 0
	}

	return math.Sqrt(sstar / tstar), sstar, tstar
}
