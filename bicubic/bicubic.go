// SPDX-License-Identifier: MIT

package bicubic

// BuildBicubicSpline returns the bicubic Hermite interpolant of the centre
// patch of a 4×4 sample window spaced step apart.
//
// Contract:
//   - grid has exactly 4 rows of 4 finite samples; it is read, never mutated
//     and never retained.
//   - step > 0 and finite.
//
// Errors:
//   - ErrNilGrid         — grid == nil (ErrNullArgument).
//   - ErrGridDimension   — not 4×4 (ErrInvalidArgument).
//   - ErrNonPositiveStep — step <= 0 (ErrInvalidArgument).
//   - ErrNonFinite       — NaN/±Inf sample or step (ErrInvalidArgument).
//
// Example:
//
//	eval, err := BuildBicubicSpline(grid, 30) // 30 m SRTM spacing
//	z := eval(0.25, 0.75)
func BuildBicubicSpline(grid [][]float64, step float64) (Evaluator, error) {
	coeffs, err := SolveCoefficients(grid, step)
	if err != nil {
		return nil, err
	}

	return NewEvaluator(coeffs), nil
}
