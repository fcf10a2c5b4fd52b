// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigen-decomposition kernels.
//
// Purpose:
//   - Jacobi rotations for small/medium symmetric matrices (classical scaling input).
//   - Deterministic pivot order so identical inputs produce identical bases.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// Operation name constants for unified error wrapping.
const (
	opEigen       = "Eigen"
	opEigenSorted = "EigenSorted"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and apply a Jacobi rotation.
//   - Stage 3: Re-check the off-diagonal mass; fail if it is still ≥ tol.
//
// Inputs:
//   - m: symmetric Matrix (within tol); n := m.Rows().
//   - tol: convergence threshold (typ. 1e-9..1e-12 for float64).
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - *Dense: Q whose columns are eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrAsymmetry, ErrNaNInf (bad tol),
//     ErrMatrixEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Complexity:
//   - Time O(maxIter * n^2), Space O(n^2).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	// Working copy A (never mutate the caller's matrix) and accumulator Q.
	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter           int
		base           int
		p, r           int     // current pivot indices
		maxOff, off    float64 // running max |A[p,r]|
		app, arr, apr  float64 // A[p,p], A[r,r], A[p,r]
		aip, air       float64
		qip, qir       float64
		newIP, newIR   float64
		theta, t, c, s float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// J.1: Find pivot (p,r) maximizing |A[p,r]|.
		maxOff = NormZero
		for i = 0; i < n; i++ {
			base = i * n
			for j = i + 1; j < n; j++ {
				off = math.Abs(a.data[base+j])
				if off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}

		// J.2: Converged.
		if maxOff < tol {
			break
		}

		// J.3: Rotation parameters.
		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: Apply rotation to A (rows/cols p and r).
		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			newIP = c*aip - s*air
			newIR = s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = newIP, newIP
			a.data[i*n+r], a.data[r*n+i] = newIR, newIR
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// J.5: Accumulate rotation into Q.
		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Final convergence check on the rotated matrix.
	maxOff = NormZero
	for i = 0; i < n; i++ {
		base = i * n
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a.data[base+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// EigenSorted runs Eigen and reorders the pairs by descending eigenvalue.
// Column k of the returned matrix is the eigenvector of the k-th largest eigenvalue.
// Ties keep the Jacobi order (stable sort).
//
// Complexity: Eigen + O(n log n + n^2).
func EigenSorted(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	eigs, q, err := Eigen(m, tol, maxIter)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSorted, err)
	}
	n := len(eigs)

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return eigs[idx[a]] > eigs[idx[b]] })

	vals := make([]float64, n)
	vecs := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, k int
	for k = 0; k < n; k++ {
		vals[k] = eigs[idx[k]]
		for i = 0; i < n; i++ {
			vecs.data[i*n+k] = q.data[i*n+idx[k]]
		}
	}

	return vals, vecs, nil
}

// toDense returns an independent *Dense copy of m.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
