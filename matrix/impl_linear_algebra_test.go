// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/nsrtm/hermite/matrix"
	"github.com/stretchr/testify/require"
)

// rowsOf materializes m for whole-matrix comparisons.
func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}
	return out
}

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

// TestTranspose verifies shape flip and element placement.
func TestTranspose(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, rowsOf(t, tr))

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	require.Equal(t, rowsOf(t, m), rowsOf(t, back))

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec verifies y = m·x and argument validation.
func TestMatVec(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {-1, 0, 2}})

	y, err := matrix.MatVec(m, []float64{1, 1, 2})
	require.NoError(t, err)
	require.Equal(t, []float64{9, 3}, y)

	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul verifies the product and the inner-dimension check.
func TestMul(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustRows(t, [][]float64{{5, 6, 7}, {8, 9, 10}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{21, 24, 27}, {47, 54, 61}}, rowsOf(t, p))

	_, err = matrix.Mul(b, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
