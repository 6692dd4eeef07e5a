// SPDX-License-Identifier: MIT
// Package matrix - core linear-algebra kernels.
//
// Purpose:
//   - Deterministic, allocation-bounded kernels over the Matrix interface.
//   - *Dense operands hit flat-slice fast-paths; any other Matrix falls back to At/Set.
//
// Determinism:
//   - Fixed i→j (→k) loop orders; results are bit-reproducible for identical inputs.

package matrix

import "fmt"

// ZeroSum is the accumulator seed used by every reduction kernel.
const ZeroSum = 0.0

// operation tags used in error wrappers
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMul       = "Mul"
)

// matrixErrorf wraps an error with an operation tag, preserving the sentinel.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix mᵀ (cols×rows).
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense(cols, rows).
//   - Stage 2: *Dense flat copy data[i*cols+j] → res[j*rows+i]; else At/Set fallback.
//
// Errors:
//   - ErrNilMatrix; At/Set errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDenseWithPolicy(cols, rows, false) // values were already accepted by m
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		res.validateNaNInf = dm.validateNaNInf

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// MatVec computes y = m·x.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); ValidateVecLen(x, m.Cols()).
//   - Stage 2: per-row dot products; *Dense uses flat row offsets.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Mul returns the matrix product a×b (a: r×n, b: n×c).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	r, n, c := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, aok := a.(*Dense)
	db, bok := b.(*Dense)
	var i, j, k int
	var acc, av, bv float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			acc = ZeroSum
			for k = 0; k < n; k++ {
				if aok && bok {
					acc += da.data[i*n+k] * db.data[k*c+j]
					continue
				}
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*c+j] = acc
		}
	}

	return res, nil
}
