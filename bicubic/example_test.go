// SPDX-License-Identifier: MIT

package bicubic_test

import (
	"errors"
	"fmt"

	"github.com/nsrtm/hermite/bicubic"
)

// ExampleBuildBicubicSpline interpolates a 4×4 elevation window sampled every
// 30 metres. The centre cell spans samples (1,1)..(2,2).
func ExampleBuildBicubicSpline() {
	grid := [][]float64{
		{33, 33, 33, 33},
		{31, 30, 31, 32},
		{28, 29, 29, 30},
		{26, 27, 28, 29},
	}

	eval, err := bicubic.BuildBicubicSpline(grid, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("corner (1,1): %.4f\n", eval(0, 0))
	fmt.Printf("corner (1,2): %.4f\n", eval(0, 1))
	fmt.Printf("centre:       %.4f\n", eval(0.5, 0.5))
	// Output:
	// corner (1,1): 30.0000
	// corner (1,2): 31.0000
	// centre:       29.6172
}

// ExampleBuildBicubicSpline_errors shows how to branch on the error category.
func ExampleBuildBicubicSpline_errors() {
	_, err := bicubic.BuildBicubicSpline(nil, 1)
	fmt.Println(errors.Is(err, bicubic.ErrNullArgument))

	_, err = bicubic.BuildBicubicSpline([][]float64{{1, 2, 3, 4}}, 1)
	fmt.Println(errors.Is(err, bicubic.ErrInvalidArgument))
	// Output:
	// true
	// true
}

// ExampleEvaluator_AtSample evaluates at grid-absolute coordinates.
func ExampleEvaluator_AtSample() {
	grid := [][]float64{
		{0, 0, 0, 0},
		{0, 1, 2, 0},
		{0, 3, 4, 0},
		{0, 0, 0, 0},
	}
	eval, _ := bicubic.BuildBicubicSpline(grid, 1)

	z, _ := eval.AtSample(2, 2)
	fmt.Printf("%.1f\n", z)

	_, err := eval.AtSample(2.05, 2.2)
	fmt.Println(errors.Is(err, bicubic.ErrOutsidePatch))
	// Output:
	// 4.0
	// true
}
