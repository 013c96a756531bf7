// Package matrix_test provides benchmarks for the three multiply kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 128, 256}

// benchTiles are the tile edges exercised by the blocked kernel.
var benchTiles = []int{16, 32, 64}

// sink to defeat dead-code elimination
var sinkM *matrix.Dense

func BenchmarkMultiplyNaive(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			fillDenseRand(b, B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MultiplyNaive(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyTile(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, tile := range benchTiles {
			b.Run(fmt.Sprintf("n=%d/tile=%d", n, tile), func(b *testing.B) {
				A := mustDense(b, n, n)
				B := mustDense(b, n, n)
				fillDenseRand(b, A, 11)
				fillDenseRand(b, B, 22)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.MultiplyTile(A, B, tile)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

func BenchmarkMultiplyBLAS(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			B := mustDense(b, n, n)
			fillDenseRand(b, A, 33)
			fillDenseRand(b, B, 44)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MultiplyBLAS(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
