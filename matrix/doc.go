// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// interpolation packages.
//
// The package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (NaN/±Inf rejection).
//   - NewDenseFromRows: ingest caller-owned [][]float64 data (copied, never aliased).
//   - Transpose, MatVec, Mul: deterministic kernels with *Dense fast-paths.
//   - Validators: a single source of truth for nil/shape/vector-length guards.
//
// All user-triggered failures are reported through the sentinel errors in
// errors.go and can be matched with errors.Is.
//
// Matrices here are tiny (the bicubic pipeline never exceeds 16×16), so the
// kernels favour clarity and fixed loop orders over blocking or SIMD.
package matrix
