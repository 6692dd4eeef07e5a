// SPDX-License-Identifier: MIT

package bicubic

const (
	// GridSize is the side of the sample window.
	GridSize = 4

	// CoefficientCount is the number of power-basis coefficients (and of
	// corner-vector entries).
	CoefficientCount = GridSize * GridSize
)

// Coefficients holds the power-basis coefficients of a bicubic patch;
// Coefficients[i*4+j] multiplies x^i · y^j.
//
// It is an array, so copies never share storage.
type Coefficients [CoefficientCount]float64

// Evaluator evaluates a bicubic patch at local coordinates (x, y) of the
// centre cell. It is a pure function: no state, no side effects, safe for
// concurrent use.
type Evaluator func(x, y float64) float64
