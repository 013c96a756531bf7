// Package matrix_test provides runnable documentation examples for the
// Dense value type and the multiply kernels.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/matmul/matrix"
)

// ExampleMultiplyNaive multiplies two 2×2 matrices with the reference kernel.
func ExampleMultiplyNaive() {
	a, _ := matrix.NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	b, _ := matrix.NewFromSlice(2, 2, []float64{5, 6, 7, 8})

	c, _ := matrix.MultiplyNaive(a, b)
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleMultiplyTile shows that the blocked kernel reproduces the reference
// result exactly for any tile size on integer inputs.
func ExampleMultiplyTile() {
	a, _ := matrix.NewFromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b, _ := matrix.NewFromSlice(3, 2, []float64{7, 8, 9, 10, 11, 12})

	ref, _ := matrix.MultiplyNaive(a, b)
	tiled, _ := matrix.MultiplyTile(a, b, 2)

	fmt.Println("equal:", ref.Equal(tiled))
	fmt.Print(tiled)

	// Output:
	// equal: true
	// [58, 64]
	// [139, 154]
}

// ExampleMultiply selects a kernel through the dispatch facade.
func ExampleMultiply() {
	a, _ := matrix.NewIdentity(2)
	b, _ := matrix.NewFromSlice(2, 2, []float64{5, 6, 7, 8})

	c, _ := matrix.Multiply(a, b, matrix.WithAlgorithm(matrix.AlgTile), matrix.WithTileSize(1))
	fmt.Print(c)

	// Output:
	// [5, 6]
	// [7, 8]
}

// ExampleDense_MoveFrom demonstrates move-assignment semantics: the source
// is left in the legal empty 0×0 state.
func ExampleDense_MoveFrom() {
	src, _ := matrix.NewFromSlice(2, 2, []float64{1, 2, 3, 4})
	dst, _ := matrix.New(0, 0)

	_ = dst.MoveFrom(src)

	fmt.Println("dst:", dst.Rows(), "x", dst.Cols())
	fmt.Println("src:", src.Rows(), "x", src.Cols())

	// Output:
	// dst: 2 x 2
	// src: 0 x 0
}
