// SPDX-License-Identifier: MIT
package finitediff_test

import (
	"fmt"

	"github.com/nsrtm/hermite/finitediff"
)

// ExampleFirstDerivatives differentiates x² sampled at x = 1..4.
func ExampleFirstDerivatives() {
	d, err := finitediff.FirstDerivatives([]float64{1, 4, 9, 16}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output:
	// [4 6]
}
