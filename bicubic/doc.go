// SPDX-License-Identifier: MIT

// Package bicubic builds bicubic Hermite surface interpolants over a 4×4
// window of uniformly spaced samples.
//
// 🚀 What is bicubic Hermite interpolation?
//
//	Given the values f, the first derivatives fx, fy and the cross derivative
//	fxy at the four corners of a unit cell, there is exactly one polynomial
//
//	  p(x, y) = Σ_{i=0..3} Σ_{j=0..3} a[i*4+j] · x^i · y^j
//
//	that matches all sixteen quantities. The sixteen coefficients follow from
//	a fixed 16×16 integer matrix applied to the corner quantities.
//
// Pipeline:
//  1. Derivative estimation (finitediff): central differences along every
//     row (fx), every column (fy) and along the rows of fy (fxy).
//  2. Coefficient solving: the centre 2×2 patch of samples and derivatives
//     is packed into a 16-entry corner vector, derivatives rescaled to the
//     unit cell, and multiplied by the basis matrix.
//  3. Evaluation: the returned Evaluator closes over the coefficients.
//
// Coordinates:
//
//	The Evaluator takes local coordinates of the centre cell. x runs along
//	the rows (x=0 at row 1, x=1 at row 2) and y runs along the columns
//	(y=0 at column 1, y=1 at column 2), so Evaluator(0, 1) reproduces
//	grid[1][2]. AtSample accepts grid-absolute coordinates in [1,2]×[1,2]
//	instead. Because derivatives are rescaled by step before solving, the
//	surface depends only on the samples, not on the lattice spacing.
//
// ⚙️ Usage:
//
//	eval, err := bicubic.BuildBicubicSpline(grid, 1)
//	if err != nil {
//	    // errors.Is(err, bicubic.ErrInvalidArgument) / bicubic.ErrNullArgument
//	}
//	z := eval(0.5, 0.5)
//
// Performance:
//
//   - Build:    fixed cost (three derivative passes over ≤4×4, one 16×16 MatVec).
//   - Evaluate: 16 multiply-adds, no allocations, safe for concurrent use.
package bicubic
