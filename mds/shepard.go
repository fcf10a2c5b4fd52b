package mds

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ShepardPoint is one pair of a Shepard diagram.
type ShepardPoint struct {
	I, J          int     // objects, I < J
	Dissimilarity float64 // input dissimilarity
	Distance      float64 // fitted Euclidean distance
	Disparity     float64 // isotonic (monotone) fit of Distance
}

// ShepardDiagram plots fitted distances against dissimilarities for a
// configuration.
type ShepardDiagram struct {
	// Points are in rank order of Dissimilarity.
	Points []ShepardPoint

	// Stress is Kruskal's stress of the configuration.
	Stress float64

	// Spearman is the rank correlation of dissimilarities and distances,
	// ties ranked by their average position. NaN if either side is constant.
	Spearman float64
}

// Shepard evaluates coordinates (n×d) against proximity (n×n).
//
// Errors: ErrInvalidInput on any shape mismatch.
//
// Complexity: one objective evaluation plus O(p log p) ranking.
func Shepard(proximity, coordinates [][]float64) (*ShepardDiagram, error) {
	ranking, err := NewRanking(proximity)
	if err != nil {
		return nil, err
	}
	dim, err := validateInit(coordinates, ranking.N)
	if err != nil {
		return nil, err
	}

	obj := NewObjective(ranking, dim)
	stress := obj.F(flatten(coordinates, dim))

	// pair index → (i, j)
	p := ranking.Pairs()
	pairI := make([]int, 0, p)
	pairJ := make([]int, 0, p)
	for i := 0; i < ranking.N; i++ {
		for j := i + 1; j < ranking.N; j++ {
			pairI = append(pairI, i)
			pairJ = append(pairJ, j)
		}
	}

	out := &ShepardDiagram{Points: make([]ShepardPoint, p), Stress: stress}
	dis := make([]float64, p)
	var idx int
	for k := 0; k < p; k++ {
		idx = ranking.Order[k]
		out.Points[k] = ShepardPoint{
			I:             pairI[idx],
			J:             pairJ[idx],
			Dissimilarity: ranking.D[idx],
			Distance:      obj.y[k],
			Disparity:     obj.yf[k],
		}
		dis[k] = ranking.D[idx]
	}
	out.Spearman = stat.Correlation(ranks(dis), ranks(obj.Fitted()), nil)

	return out, nil
}

// ranks returns 1-based ranks of v with ties averaged.
func ranks(v []float64) []float64 {
	n := len(v)
	sorted := make([]float64, n)
	copy(sorted, v)
	inds := make([]int, n)
	floats.Argsort(sorted, inds)

	r := make([]float64, n)
	var i, j, k int
	var avg float64
	for i = 0; i < n; i = j {
		for j = i + 1; j < n && sorted[j] == sorted[i]; j++ {
		}
		avg = float64(i+j+1) / 2
		for k = i; k < j; k++ {
			r[inds[k]] = avg
		}
	}

	return r
}

// String renders the diagram one pair per line.
func (s *ShepardDiagram) String() string {
	out := fmt.Sprintf("stress=%.6g spearman=%.6g\n", s.Stress, s.Spearman)
	for _, pt := range s.Points {
		out += fmt.Sprintf("(%d,%d) δ=%.6g d=%.6g d̂=%.6g\n", pt.I, pt.J, pt.Dissimilarity, pt.Distance, pt.Disparity)
	}

	return out
}
