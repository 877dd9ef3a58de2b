// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the hot kernels and the
// decomposition factories, using deterministic random fill.

package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densela/matrix"
)

// benchSizes are the square matrix sizes to benchmark. Decomposition
// benches stay at simulation scale; the elementwise benches stress the
// flat-buffer fast paths.
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkF float64
)

// randDense builds an n×n Dense with a seeded uniform fill.
func randDense(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	flat := make([]float64, n*n)
	for i := range flat {
		flat[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFromFlat(n, n, flat)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 1337)
			y := randDense(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDecomposeLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				lu, err := matrix.DecomposeLU(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF += float64(lu.Piv()[0]) // keep the factorization alive
			}
		})
	}
}

func BenchmarkDecomposeQR(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 21)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				qr, err := matrix.DecomposeQR(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = qr.R()
			}
		})
	}
}

func BenchmarkDecomposeSVD(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randDense(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				svd, err := matrix.DecomposeSVD(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = svd.Norm2()
			}
		})
	}
}
