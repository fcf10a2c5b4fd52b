package classical

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nmds/matrix"
)

var (
	// ErrBadDimension indicates k < 1 or k > n.
	ErrBadDimension = errors.New("classical: dimension must be in [1, n]")

	// ErrNegativeEigenvalue indicates that one of the k leading eigenvalues of
	// the double-centered matrix is negative beyond the eigen tolerance, so no
	// real k-dimensional configuration reproduces it.
	ErrNegativeEigenvalue = errors.New("classical: leading eigenvalue is negative")
)

const (
	// eigenRelTol scales the Jacobi off-diagonal tolerance by the matrix magnitude.
	eigenRelTol = 1e-12

	// rotationsPerEntry bounds Jacobi rotations at rotationsPerEntry·n² (min 100).
	rotationsPerEntry = 50
)

// Result holds principal coordinates and their spectrum.
type Result struct {
	// Coordinates is n×k, one row per object.
	Coordinates [][]float64

	// Eigenvalues are the k leading eigenvalues of B, descending.
	Eigenvalues []float64

	// Proportion[j] is Eigenvalues[j] divided by the sum of positive eigenvalues.
	Proportion []float64
}

// Fit computes the k-dimensional principal coordinates of proximity.
//
// Contracts:
//   - proximity is n×n (symmetry is assumed; it is symmetrized up to rounding).
//   - 1 ≤ k ≤ n.
//
// Errors:
//   - matrix.ErrInvalidDimensions / matrix.ErrDimensionMismatch (shape),
//     matrix.ErrNaNInf (non-finite entry), ErrBadDimension,
//     ErrNegativeEigenvalue, matrix.ErrMatrixEigenFailed.
//
// Complexity: see package doc.
func Fit(proximity [][]float64, k int) (*Result, error) {
	// Stage 1: shape and dimension.
	if err := matrix.ValidateSquareRows(proximity); err != nil {
		return nil, fmt.Errorf("classical: %w", err)
	}
	n := len(proximity)
	if k < 1 || k > n {
		return nil, fmt.Errorf("classical: k=%d n=%d: %w", k, n, ErrBadDimension)
	}

	// Stage 2: A = -½·D², then B = J·A·J.
	var v, scale float64
	var i, j int
	sq := make([][]float64, n)
	for i = 0; i < n; i++ {
		sq[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			v = proximity[i][j]
			sq[i][j] = -0.5 * v * v
		}
	}
	a, err := matrix.NewDenseFromRows(sq)
	if err != nil {
		return nil, fmt.Errorf("classical: %w", err)
	}
	b, err := matrix.DoubleCenter(a)
	if err != nil {
		return nil, fmt.Errorf("classical: %w", err)
	}
	if b, err = matrix.Symmetrize(b); err != nil {
		return nil, fmt.Errorf("classical: %w", err)
	}
	for _, row := range b.ToRows() {
		for _, v = range row {
			scale = math.Max(scale, math.Abs(v))
		}
	}

	// Stage 3: spectrum, descending.
	tol := eigenRelTol * math.Max(1, scale)
	maxIter := rotationsPerEntry * n * n
	if maxIter < 100 {
		maxIter = 100
	}
	vals, vecs, err := matrix.EigenSorted(b, tol, maxIter)
	if err != nil {
		return nil, fmt.Errorf("classical: %w", err)
	}
	q := vecs.ToRows()

	// Stage 4: scale the leading eigenvectors by √λ.
	res := &Result{
		Coordinates: make([][]float64, n),
		Eigenvalues: make([]float64, k),
		Proportion:  make([]float64, k),
	}
	var positive float64
	for _, v = range vals {
		if v > 0 {
			positive += v
		}
	}
	for i = 0; i < n; i++ {
		res.Coordinates[i] = make([]float64, k)
	}
	for j = 0; j < k; j++ {
		if vals[j] < -tol {
			return nil, fmt.Errorf("classical: eigenvalue %d = %g: %w", j, vals[j], ErrNegativeEigenvalue)
		}
		if vals[j] < 0 {
			vals[j] = 0 // rounding noise of a rank-deficient spectrum
		}
		res.Eigenvalues[j] = vals[j]
		if positive > 0 {
			res.Proportion[j] = vals[j] / positive
		}
		scale = math.Sqrt(vals[j])
		for i = 0; i < n; i++ {
			res.Coordinates[i][j] = q[i][j] * scale
		}
	}

	return res, nil
}
