// SPDX-License-Identifier: MIT

package bicubic

import (
	"errors"
	"fmt"
)

// Category sentinels. Every concrete error below wraps exactly one of them,
// so callers can branch on the category with errors.Is.
var (
	// ErrNullArgument reports an absent required input.
	ErrNullArgument = errors.New("bicubic: null argument")

	// ErrInvalidArgument reports an input that is present but unusable.
	ErrInvalidArgument = errors.New("bicubic: invalid argument")
)

var (
	// ErrNilGrid indicates the grid reference is nil.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrNullArgument)

	// ErrGridDimension indicates the grid is not exactly 4 rows of 4 samples.
	ErrGridDimension = fmt.Errorf("%w: grid dimension mismatch: bicubic interpolation requires a 4×4 sample window", ErrInvalidArgument)

	// ErrNonPositiveStep indicates step <= 0.
	ErrNonPositiveStep = fmt.Errorf("%w: step must be positive", ErrInvalidArgument)

	// ErrNonFinite indicates a NaN or ±Inf sample or step.
	ErrNonFinite = fmt.Errorf("%w: samples and step must be finite", ErrInvalidArgument)

	// ErrOutsidePatch indicates an AtSample coordinate outside [1,2]×[1,2].
	ErrOutsidePatch = fmt.Errorf("%w: point lies outside the centre patch", ErrInvalidArgument)
)
