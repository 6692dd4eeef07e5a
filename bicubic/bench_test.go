// SPDX-License-Identifier: MIT
// Package bicubic_test provides benchmarks for building and evaluating surfaces.
package bicubic_test

import (
	"testing"

	"github.com/nsrtm/hermite/bicubic"
)

// sinks to defeat dead-code elimination
var (
	sinkE bicubic.Evaluator
	sinkF float64
)

func BenchmarkBuildBicubicSpline(b *testing.B) {
	b.ReportAllocs()
	grid := referenceGrid()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eval, err := bicubic.BuildBicubicSpline(grid, 30)
		if err != nil {
			b.Fatal(err)
		}
		sinkE = eval
	}
}

func BenchmarkEvaluator(b *testing.B) {
	b.ReportAllocs()
	eval, err := bicubic.BuildBicubicSpline(referenceGrid(), 30)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = eval(0.37, 0.61)
	}
}
