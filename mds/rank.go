package mds

import (
	"fmt"

	"github.com/katalvlaran/nmds/matrix"
	"gonum.org/v1/gonum/floats"
)

// Ranking is the rank structure of a dissimilarity matrix, fixed for a fit.
type Ranking struct {
	// N is the number of objects.
	N int

	// D holds the dissimilarities in pair order (0,1),(0,2),…,(0,N-1),(1,2),…
	D []float64

	// Order[k] is the pair index of the k-th smallest dissimilarity.
	Order []int

	// Inverse[p] is the rank position of pair p: Inverse[Order[k]] == k.
	Inverse []int
}

// NumPairs returns n(n-1)/2, the number of unordered pairs of n objects.
func NumPairs(n int) int {
	return n * (n - 1) / 2
}

// PairIndex returns the 1-based position of the unordered pair {u, s} in
// pair order: n·lo - lo(lo+1)/2 + hi - lo with lo = min(u,s), hi = max(u,s).
// The result is meaningful only for u != s.
func PairIndex(n, u, s int) int {
	lo, hi := u, s
	if lo > hi {
		lo, hi = hi, lo
	}

	return n*lo - lo*(lo+1)/2 + hi - lo
}

// Linearize returns the strict lower triangle of a square matrix in pair
// order; entry (i,j), i<j, takes proximity[j][i].
func Linearize(proximity [][]float64) []float64 {
	n := len(proximity)
	d := make([]float64, 0, NumPairs(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d = append(d, proximity[j][i])
		}
	}

	return d
}

// NewRanking linearizes proximity and sorts it once.
// Ties break arbitrarily.
//
// Errors: ErrInvalidInput if proximity is empty, not square, or has fewer
// than two objects.
//
// Complexity: O(p log p), p = n(n-1)/2.
func NewRanking(proximity [][]float64) (*Ranking, error) {
	if err := matrix.ValidateSquareRows(proximity); err != nil {
		return nil, fmt.Errorf("%w: proximity: %w", ErrInvalidInput, err)
	}
	n := len(proximity)
	if n < 2 {
		return nil, fmt.Errorf("%w: proximity needs at least 2 objects, got %d", ErrInvalidInput, n)
	}

	d := Linearize(proximity)
	sorted := make([]float64, len(d))
	copy(sorted, d)
	order := make([]int, len(d))
	floats.Argsort(sorted, order)

	inverse := make([]int, len(d))
	for k, p := range order {
		inverse[p] = k
	}

	return &Ranking{N: n, D: d, Order: order, Inverse: inverse}, nil
}

// Pairs returns the number of unordered pairs tracked by r.
func (r *Ranking) Pairs() int { return len(r.D) }
