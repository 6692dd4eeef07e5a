// SPDX-License-Identifier: MIT

// Package finitediff estimates first derivatives of uniformly sampled data
// with the centered differencing formula.
//
// 🚀 What is a central difference?
//
//	For samples f(x−h), f(x), f(x+h) on a lattice of spacing h, the first
//	derivative at x is approximated by
//
//	  f'(x) ≈ (f(x+h) − f(x−h)) / (2·h)
//
//	which is exact for polynomials up to degree two.
//
// ✨ Key features:
//   - CentralDifference: the scalar formula.
//   - FirstDerivatives: derivatives at every interior index of a sequence
//     (an n-length input yields n−2 values; endpoints have no symmetric neighbour).
//   - RowDerivatives: FirstDerivatives applied to every row of a matrix.
//
// ⚙️ Usage:
//
//	import "github.com/nsrtm/hermite/finitediff"
//
//	d, err := finitediff.FirstDerivatives([]float64{1, 4, 9, 16}, 1)
//	// d == [4, 6]
package finitediff
