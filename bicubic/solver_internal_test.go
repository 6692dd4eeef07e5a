// SPDX-License-Identifier: MIT

package bicubic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCornerVector_Order uses an asymmetric surface, 10r + c + r·c, so every
// block distinguishes (1,2) from (2,1).
func TestCornerVector_Order(t *testing.T) {
	grid := make([][]float64, GridSize)
	for r := range grid {
		grid[r] = make([]float64, GridSize)
		for c := range grid[r] {
			grid[r][c] = float64(10*r + c + r*c)
		}
	}

	want := [CoefficientCount]float64{
		12, 14, 23, 26, // values
		2, 2, 3, 3, // along rows: 1 + r
		11, 12, 11, 12, // along columns: 10 + c
		1, 1, 1, 1, // cross
	}

	for _, step := range []float64{1, 2, 0.5, 1e-300, 1e300} {
		samples, err := validate(grid, step)
		require.NoError(t, err)
		got, err := cornerVector(samples)
		require.NoError(t, err)
		require.Equal(t, want, got, "step=%g", step)
	}
}

// TestSolveCoefficients_ExtremeSteps checks that the coefficients of a fixed
// window do not depend on step, even where step² leaves the float64 range.
func TestSolveCoefficients_ExtremeSteps(t *testing.T) {
	grid := [][]float64{
		{31, 30, 29, 28},
		{32, 30, 31, 30},
		{33, 29, 29, 31},
		{34, 31, 30, 29},
	}
	base, err := SolveCoefficients(grid, 1)
	require.NoError(t, err)

	for _, step := range []float64{1e160, 1e200, 1e308, math.MaxFloat64, 1e-160, 1e-300, 1e-310, math.SmallestNonzeroFloat64} {
		got, err := SolveCoefficients(grid, step)
		require.NoError(t, err, "step=%g", step)
		require.Equal(t, base, got, "step=%g", step)
	}
}

// TestValidate_NoComputationOnFailure checks that nothing is returned on failure.
func TestValidate_NoComputationOnFailure(t *testing.T) {
	samples, err := validate([][]float64{{1}}, 1)
	require.ErrorIs(t, err, ErrGridDimension)
	require.Nil(t, samples)

	coeffs, err := SolveCoefficients(nil, 1)
	require.ErrorIs(t, err, ErrNilGrid)
	require.Equal(t, Coefficients{}, coeffs)
}
