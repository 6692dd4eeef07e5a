// SPDX-License-Identifier: MIT

package finitediff

import (
	"fmt"
	"math"

	"github.com/nsrtm/hermite/matrix"
)

// MinSamples is the shortest sequence that has an interior index.
const MinSamples = 3

// CentralDifference returns the centered-difference estimate of the first
// derivative at the midpoint of previous and next, which lie step apart
// from it on either side: (next − previous) / (2·step).
//
// No validation is performed; callers go through FirstDerivatives.
func CentralDifference(previous, next, step float64) float64 {
	return (next - previous) / (2 * step)
}

// FirstDerivatives returns the central-difference derivative at every
// interior index of values.
//
// Contract:
//
//	len(out) == len(values) − 2
//	out[i−1] == CentralDifference(values[i−1], values[i+1], step), i ∈ [1, n−2]
//
// values is never mutated and out never aliases it.
//
// Errors:
//   - ErrTooFewSamples    — len(values) < 3.
//   - ErrNonPositiveStep  — !(step > 0) or step is +Inf.
//
// Complexity: O(n) time, one allocation.
func FirstDerivatives(values []float64, step float64) ([]float64, error) {
	if err := validateStep(step); err != nil {
		return nil, err
	}
	n := len(values)
	if n < MinSamples {
		return nil, fmt.Errorf("FirstDerivatives: got %d samples: %w", n, ErrTooFewSamples)
	}

	derivative := make([]float64, n-2)
	for i := 1; i < n-1; i++ {
		derivative[i-1] = CentralDifference(values[i-1], values[i+1], step)
	}

	return derivative, nil
}

// RowDerivatives applies FirstDerivatives to every row of m and returns the
// results as an m.Rows() × (m.Cols()−2) matrix. Entry (r, c) of the result
// is the derivative along the row at column c+1 of m.
//
// Errors:
//   - matrix.ErrNilMatrix — m is nil.
//   - ErrTooFewSamples, ErrNonPositiveStep — as FirstDerivatives.
func RowDerivatives(m matrix.Matrix, step float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("RowDerivatives: %w", err)
	}
	if err := validateStep(step); err != nil {
		return nil, err
	}
	rows, cols := m.Rows(), m.Cols()
	if cols < MinSamples {
		return nil, fmt.Errorf("RowDerivatives: got %d columns: %w", cols, ErrTooFewSamples)
	}

	out, err := matrix.NewDenseWithPolicy(rows, cols-2, false)
	if err != nil {
		return nil, fmt.Errorf("RowDerivatives: %w", err)
	}

	dense, isDense := m.(*matrix.Dense)
	row := make([]float64, cols)
	var r, c int
	var d []float64
	for r = 0; r < rows; r++ {
		if isDense {
			if row, err = dense.Row(r); err != nil {
				return nil, fmt.Errorf("RowDerivatives: %w", err)
			}
		} else {
			for c = 0; c < cols; c++ {
				if row[c], err = m.At(r, c); err != nil {
					return nil, fmt.Errorf("RowDerivatives: %w", err)
				}
			}
		}
		if d, err = FirstDerivatives(row, step); err != nil {
			return nil, fmt.Errorf("RowDerivatives: row %d: %w", r, err)
		}
		for c = range d {
			if err = out.Set(r, c, d[c]); err != nil {
				return nil, fmt.Errorf("RowDerivatives: %w", err)
			}
		}
	}

	return out, nil
}

func validateStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 1) {
		return fmt.Errorf("step %g: %w", step, ErrNonPositiveStep)
	}

	return nil
}
