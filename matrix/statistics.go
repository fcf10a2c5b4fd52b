// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Centering transforms used by scaling methods.
//
// Exposed API:
//   - DoubleCenter(X) -> (B)   // B = J X J with J = I - 11ᵀ/n
//   - Symmetrize(X)   -> (S)   // S = (X + Xᵀ)/2
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops over the flat buffer.

package matrix

// Operation name constants for unified error wrapping.
const (
	opDoubleCenter = "DoubleCenter"
	opSymmetrize   = "Symmetrize"
)

// DoubleCenter subtracts row means and column means and adds back the grand mean:
//
//	B[i,j] = X[i,j] - rowMean[i] - colMean[j] + grandMean
//
// which equals J·X·J for the centering matrix J = I - 11ᵀ/n.
//
// Implementation:
//   - Stage 1: validate square input and copy it into a working Dense.
//   - Stage 2: accumulate row and column sums in one pass.
//   - Stage 3: apply the centering formula in place on the copy.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), wrapped At errors.
//
// Complexity:
//   - Time O(n^2), Space O(n^2) for the output (+ O(n) means).
func DoubleCenter(X Matrix) (*Dense, error) {
	if err := ValidateSquare(X); err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	b, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opDoubleCenter, err)
	}
	n := b.r

	rowMeans := make([]float64, n)
	colMeans := make([]float64, n)
	var grand float64
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			rowMeans[i] += b.data[base+j]
			colMeans[j] += b.data[base+j]
		}
		grand += rowMeans[i]
	}
	invN := 1.0 / float64(n)
	for i = 0; i < n; i++ {
		rowMeans[i] *= invN
		colMeans[i] *= invN
	}
	grand *= invN * invN

	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			b.data[base+j] += grand - rowMeans[i] - colMeans[j]
		}
	}

	return b, nil
}

// Symmetrize returns (X + Xᵀ)/2 for a square X.
// Handy before Eigen when X is symmetric only up to rounding noise.
//
// Complexity: O(n^2).
func Symmetrize(X Matrix) (*Dense, error) {
	if err := ValidateSquare(X); err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	s, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opSymmetrize, err)
	}
	n := s.r
	var avg float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			avg = 0.5 * (s.data[i*n+j] + s.data[j*n+i])
			s.data[i*n+j], s.data[j*n+i] = avg, avg
		}
	}

	return s, nil
}
