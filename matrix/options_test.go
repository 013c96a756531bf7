// Package matrix_test contains unit tests for functional options and the
// Multiply dispatch facade.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// TestWithOptionPanics ensures WithX constructors panic on nonsensical
// values (programmer error), per the package option contract.
func TestWithOptionPanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithTileSize(0) })            // zero tile is non-progressing
	require.Panics(t, func() { matrix.WithTileSize(-3) })           // negative tile is nonsense
	require.Panics(t, func() { matrix.WithEpsilon(-1e-9) })         // negative tolerance
	require.Panics(t, func() { matrix.WithAlgorithm(matrix.Algorithm(42)) }) // unknown kernel

	require.NotPanics(t, func() { matrix.WithTileSize(1) })  // minimal legal tile
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })   // exact comparison is legal
}

// TestMultiplyFacadeDispatch verifies the facade reproduces each concrete
// kernel under the corresponding option set.
func TestMultiplyFacadeDispatch(t *testing.T) {
	a := mustDense(t, 6, 4)
	b := mustDense(t, 4, 5)
	fillDenseSmallInts(t, a, 3)
	fillDenseSmallInts(t, b, 4)

	ref, err := matrix.MultiplyNaive(a, b)
	require.NoError(t, err)

	// Default dispatch is the reference kernel.
	got, err := matrix.Multiply(a, b)
	require.NoError(t, err)
	require.True(t, ref.Equal(got))

	// Tiled dispatch with an explicit tile size.
	got, err = matrix.Multiply(a, b, matrix.WithAlgorithm(matrix.AlgTile), matrix.WithTileSize(2))
	require.NoError(t, err)
	require.True(t, ref.Equal(got)) // small integers: exact agreement

	// Tiled dispatch falls back to DefaultTileSize when unspecified.
	got, err = matrix.Multiply(a, b, matrix.WithAlgorithm(matrix.AlgTile))
	require.NoError(t, err)
	require.True(t, ref.Equal(got))

	// BLAS dispatch agrees within tolerance.
	got, err = matrix.Multiply(a, b, matrix.WithAlgorithm(matrix.AlgBLAS))
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(ref, got, matrix.DefaultEpsilon))
}

// TestMultiplyFacadeErrors verifies the facade forwards kernel failure
// contracts untouched.
func TestMultiplyFacadeErrors(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 2, 2)

	_, err := matrix.Multiply(a, b) // incompatible inner dimensions
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Multiply(a, b, matrix.WithAlgorithm(matrix.AlgBLAS))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestProductAlias verifies the Product alias maps to the reference kernel.
func TestProductAlias(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []float64{5, 6, 7, 8})

	c, err := matrix.Product(a, b)
	require.NoError(t, err)
	require.True(t, c.Equal(mustFromSlice(t, 2, 2, []float64{19, 22, 43, 50})))
}
