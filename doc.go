// Package hermite is a small numeric toolkit for smooth surface lookups on
// uniformly sampled grids, such as SRTM elevation tiles.
//
// 🚀 What is hermite?
//
//	A pure-Go, dependency-light library that brings together:
//		• Finite differences: central-difference first derivatives
//		• Matrix kernels: dense row-major storage, Transpose, MatVec, Mul
//		• Bicubic Hermite patches: 4×4 sample window → immutable evaluator
//
// ✨ Why choose hermite?
//
//   - Fail-fast validation – every input checked before any arithmetic
//   - Sentinel errors – match categories with errors.Is
//   - Deterministic – fixed loop orders, bit-reproducible results
//   - Concurrency-friendly – evaluators are pure functions
//
// Under the hood, everything is organized under three subpackages:
//
//	bicubic/    — coefficient solver, surface evaluator, BuildBicubicSpline
//	finitediff/ — centered differencing over sequences and matrix rows
//	matrix/     — Dense matrix, validators and linear-algebra kernels
//
// Quick example:
//
//	eval, err := bicubic.BuildBicubicSpline(window, 30)
//	z := eval(0.5, 0.5) // centre of the (1,1)–(2,2) cell
//
//	go get github.com/nsrtm/hermite
package hermite
