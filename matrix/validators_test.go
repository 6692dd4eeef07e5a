// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/nsrtm/hermite/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateShape covers the exact-shape guard used for sample windows.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(4, 4)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateShape(m, 4, 4))
	require.ErrorIs(t, matrix.ValidateShape(m, 3, 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(m, 4, 5), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 4, 4), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateShape(typedNil, 4, 4), matrix.ErrNilMatrix)
}

// TestValidateVecLen covers nil and wrong-length vectors.
func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
