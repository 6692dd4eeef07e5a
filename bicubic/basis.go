// SPDX-License-Identifier: MIT

package bicubic

import (
	"fmt"

	"github.com/nsrtm/hermite/matrix"
)

// hermiteBasis converts the corner vector
//
//	[f00 f01 f10 f11 | fc00 fc01 fc10 fc11 | fr00 fr01 fr10 fr11 | frc00 frc01 frc10 frc11]
//
// into power-basis coefficients; row k yields Coefficients[k]. Corner pq is
// patch row p, patch column q. fc is the derivative along a grid row (the
// Evaluator's y axis), fr the derivative along a grid column (its x axis)
// and frc the cross derivative, all in unit-cell scale.
//
// It is the inverse of the matrix that evaluates p, ∂p/∂y, ∂p/∂x and
// ∂²p/∂x∂y at the four unit-cell corners.
var hermiteBasis = [CoefficientCount][CoefficientCount]int8{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{-3, 3, 0, 0, -2, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, -2, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, -3, 3, 0, 0, -2, -1, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 2, -2, 0, 0, 1, 1, 0, 0},
	{-3, 0, 3, 0, 0, 0, 0, 0, -2, 0, -1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, -3, 0, 3, 0, 0, 0, 0, 0, -2, 0, -1, 0},
	{9, -9, -9, 9, 6, 3, -6, -3, 6, -6, 3, -3, 4, 2, 2, 1},
	{-6, 6, 6, -6, -3, -3, 3, 3, -4, 4, -2, 2, -2, -2, -1, -1},
	{2, 0, -2, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 2, 0, -2, 0, 0, 0, 0, 0, 1, 0, 1, 0},
	{-6, 6, 6, -6, -4, -2, 4, 2, -3, 3, -3, 3, -2, -1, -2, -1},
	{4, -4, -4, 4, 2, 2, -2, -2, 2, -2, 2, -2, 1, 1, 1, 1},
}

// basisTransform mirrors hermiteBasis as a *matrix.Dense for MatVec.
// It is never mutated after package initialisation.
var basisTransform = mustBasisTransform()

func mustBasisTransform() *matrix.Dense {
	m, err := matrix.NewDense(CoefficientCount, CoefficientCount)
	if err != nil {
		panic(fmt.Sprintf("bicubic: basis transform: %v", err))
	}
	for i := range hermiteBasis {
		for j, v := range hermiteBasis[i] {
			if err = m.Set(i, j, float64(v)); err != nil {
				panic(fmt.Sprintf("bicubic: basis transform: %v", err))
			}
		}
	}

	return m
}
