// SPDX-License-Identifier: MIT

package bicubic

import (
	"errors"
	"fmt"
	"math"

	"github.com/nsrtm/hermite/finitediff"
	"github.com/nsrtm/hermite/matrix"
)

// operation tags used in error wrappers
const (
	opSolve   = "SolveCoefficients"
	opCorners = "cornerVector"
)

// patchCorners lists the centre-patch sample positions (row, col) in
// corner-vector order.
var patchCorners = [4][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}

// SolveCoefficients validates grid and step, estimates derivatives and
// returns the power-basis coefficients of the centre patch.
//
// Implementation:
//   - Stage 1: validate (nil → dimensions → step → finiteness); nothing is computed on failure.
//   - Stage 2: build the 16-entry corner vector in unit-cell units (cornerVector).
//   - Stage 3: Coefficients = hermiteBasis · corner.
//
// Errors:
//   - ErrNilGrid (ErrNullArgument).
//   - ErrGridDimension, ErrNonPositiveStep, ErrNonFinite (ErrInvalidArgument).
//
// Complexity: O(1); the window size is fixed.
func SolveCoefficients(grid [][]float64, step float64) (Coefficients, error) {
	var coeffs Coefficients

	samples, err := validate(grid, step)
	if err != nil {
		return coeffs, err
	}

	corner, err := cornerVector(samples)
	if err != nil {
		return coeffs, fmt.Errorf("%s: %w", opSolve, err)
	}

	out, err := matrix.MatVec(basisTransform, corner[:])
	if err != nil {
		return coeffs, fmt.Errorf("%s: %w", opSolve, err)
	}
	copy(coeffs[:], out)

	return coeffs, nil
}

// validate performs every input check before any arithmetic and returns the
// samples copied into a 4×4 *matrix.Dense.
func validate(grid [][]float64, step float64) (*matrix.Dense, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if len(grid) != GridSize {
		return nil, fmt.Errorf("got %d rows: %w", len(grid), ErrGridDimension)
	}
	for r, row := range grid {
		if len(row) != GridSize {
			return nil, fmt.Errorf("row %d has %d columns: %w", r, len(row), ErrGridDimension)
		}
	}
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("step %g: %w", step, ErrNonFinite)
	}
	if step <= 0 {
		return nil, fmt.Errorf("step %g: %w", step, ErrNonPositiveStep)
	}

	samples, err := matrix.NewDenseFromRows(grid)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, fmt.Errorf("%w: %w", ErrNonFinite, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return samples, nil
}

// cellStep is the sample spacing in patch-local coordinates. Differencing
// in cell units gives (next−previous)/2 directly, which equals the
// per-distance derivative times step without ever forming 1/step or step².
const cellStep = 1.0

// cornerVector estimates the derivatives of samples and packs the centre
// patch into the order expected by hermiteBasis:
//
//	values, along-row derivatives, along-column derivatives, cross derivatives
//
// each at (1,1), (1,2), (2,1), (2,2). All derivatives are in unit-cell units,
// so the result does not depend on the lattice spacing.
//
// Layouts (r, c index the 4×4 grid):
//
//	alongRow   4×2  alongRow[r][c-1]
//	alongCol   2×4  alongCol[r-1][c]
//	cross      2×2  cross[r-1][c-1]
func cornerVector(samples *matrix.Dense) ([CoefficientCount]float64, error) {
	var corner [CoefficientCount]float64
	if err := matrix.ValidateShape(samples, GridSize, GridSize); err != nil {
		return corner, fmt.Errorf("%s: %w", opCorners, err)
	}

	alongRow, err := finitediff.RowDerivatives(samples, cellStep)
	if err != nil {
		return corner, fmt.Errorf("%s: along rows: %w", opCorners, err)
	}

	columns, err := matrix.Transpose(samples)
	if err != nil {
		return corner, fmt.Errorf("%s: %w", opCorners, err)
	}
	perColumn, err := finitediff.RowDerivatives(columns, cellStep)
	if err != nil {
		return corner, fmt.Errorf("%s: along columns: %w", opCorners, err)
	}
	alongCol, err := matrix.Transpose(perColumn)
	if err != nil {
		return corner, fmt.Errorf("%s: %w", opCorners, err)
	}

	cross, err := finitediff.RowDerivatives(alongCol, cellStep)
	if err != nil {
		return corner, fmt.Errorf("%s: cross: %w", opCorners, err)
	}

	blocks := []struct {
		m      matrix.Matrix
		dr, dc int
	}{
		{samples, 0, 0},
		{alongRow, 0, 1},
		{alongCol, 1, 0},
		{cross, 1, 1},
	}
	for b, blk := range blocks {
		for k, pos := range patchCorners {
			v, err := blk.m.At(pos[0]-blk.dr, pos[1]-blk.dc)
			if err != nil {
				return corner, fmt.Errorf("%s: block %d corner %d: %w", opCorners, b, k, err)
			}
			corner[b*4+k] = v
		}
	}

	return corner, nil
}
