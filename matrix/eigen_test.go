// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nmds/matrix"
	"github.com/stretchr/testify/require"
)

const eigenTol = 1e-10

// TestEigen_Diagonal checks that an already diagonal matrix is returned as-is with Q = I.
func TestEigen_Diagonal(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{3, 0}, {0, 1}})
	require.NoError(t, err)

	vals, q, err := matrix.Eigen(m, eigenTol, 100)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1}, vals)
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, q.ToRows())
}

// TestEigenSorted_Reconstruction verifies A·v = λ·v for every pair and descending order.
func TestEigenSorted_Reconstruction(t *testing.T) {
	rows := [][]float64{
		{4, 1, 2},
		{1, 3, 0},
		{2, 0, 5},
	}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	vals, q, err := matrix.EigenSorted(m, eigenTol, 1000)
	require.NoError(t, err)
	require.Len(t, vals, 3)
	require.GreaterOrEqual(t, vals[0], vals[1])
	require.GreaterOrEqual(t, vals[1], vals[2])

	// Trace is preserved by orthogonal similarity.
	require.InDelta(t, 12.0, vals[0]+vals[1]+vals[2], 1e-9)

	var av, qv float64
	for k := 0; k < 3; k++ {
		for i := 0; i < 3; i++ {
			av = 0
			for j := 0; j < 3; j++ {
				qv, _ = q.At(j, k)
				av += rows[i][j] * qv
			}
			qv, _ = q.At(i, k)
			require.InDelta(t, vals[k]*qv, av, 1e-8, "A·v != λ·v for pair %d", k)
		}
	}
}

// TestEigen_Errors checks the validation sentinels and the iteration cap.
func TestEigen_Errors(t *testing.T) {
	asym, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 1}})
	require.NoError(t, err)
	_, _, err = matrix.Eigen(asym, eigenTol, 10)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	full, err := matrix.NewDenseFromRows([][]float64{{2, 1, 1}, {1, 2, 1}, {1, 1, 2}})
	require.NoError(t, err)
	_, _, err = matrix.Eigen(full, eigenTol, 0)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)

	_, _, err = matrix.Eigen(full, math.NaN(), 10)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
