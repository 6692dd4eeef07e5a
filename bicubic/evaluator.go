// SPDX-License-Identifier: MIT

package bicubic

import "fmt"

// NewEvaluator returns the surface p(x, y) = Σ_{i,j=0..3} c[i*4+j]·x^i·y^j.
//
// c is captured by value, so the Evaluator owns its coefficients and later
// changes to the caller's array are not observed.
func NewEvaluator(c Coefficients) Evaluator {
	return func(x, y float64) float64 {
		var result float64
		xi := 1.0
		for i := 0; i < GridSize; i++ {
			yj := 1.0
			for j := 0; j < GridSize; j++ {
				result += c[i*GridSize+j] * xi * yj
				yj *= y
			}
			xi *= x
		}

		return result
	}
}

// Evaluator returns NewEvaluator(c).
func (c Coefficients) Evaluator() Evaluator { return NewEvaluator(c) }

// AtSample evaluates the surface at grid-absolute sample coordinates, where
// sample (r, c) of the 4×4 window sits at (r, c). Only the centre patch
// [1,2]×[1,2] is interpolated; anything else is extrapolation and yields
// ErrOutsidePatch.
func (e Evaluator) AtSample(row, col float64) (float64, error) {
	if !inPatch(row) || !inPatch(col) {
		return 0, fmt.Errorf("AtSample(%g, %g): %w", row, col, ErrOutsidePatch)
	}

	return e(row-1, col-1), nil
}

// inPatch reports 1 <= v <= 2; NaN is rejected.
func inPatch(v float64) bool { return v >= 1 && v <= 2 }
