// SPDX-License-Identifier: MIT

package finitediff

import "errors"

var (
	// ErrTooFewSamples indicates the input has no interior index (n < 3).
	ErrTooFewSamples = errors.New("finitediff: at least 3 samples are required")

	// ErrNonPositiveStep indicates the lattice spacing is zero, negative, NaN or ±Inf.
	ErrNonPositiveStep = errors.New("finitediff: step must be positive and finite")
)
