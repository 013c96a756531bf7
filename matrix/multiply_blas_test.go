// Package matrix_test contains unit tests for the BLAS-backed multiply:
// its agreement contract with the reference kernel and its adapter behavior.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matmul/matrix"
)

// TestMultiplyBLASConcrete checks the canonical 2×2 scenario through the
// backend adapter. Small integers stay exact even under backend reordering.
func TestMultiplyBLASConcrete(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []float64{5, 6, 7, 8})

	c, err := matrix.MultiplyBLAS(a, b)
	require.NoError(t, err)

	want := mustFromSlice(t, 2, 2, []float64{19, 22, 43, 50})
	require.True(t, matrix.EqualApprox(c, want, matrix.DefaultEpsilon))
}

// TestMultiplyBLASAgreesWithNaive verifies tolerance-level agreement with
// the reference kernel on real-valued inputs across shapes.
func TestMultiplyBLASAgreesWithNaive(t *testing.T) {
	shapes := [][3]int{ // {m, n, p}
		{1, 1, 1},
		{2, 3, 4},
		{5, 5, 5},
		{16, 8, 12},
		{31, 17, 23},
	}
	for _, s := range shapes {
		m, n, p := s[0], s[1], s[2]
		a := mustDense(t, m, n)
		b := mustDense(t, n, p)
		fillDenseRand(t, a, int64(10+m)) // arbitrary reals: summation order matters
		fillDenseRand(t, b, int64(20+p))

		ref, err := matrix.MultiplyNaive(a, b)
		require.NoError(t, err)
		got, err := matrix.MultiplyBLAS(a, b)
		require.NoError(t, err)

		// The backend may reorder summation; agreement is tolerance-based.
		require.True(t, matrix.EqualApprox(ref, got, matrix.DefaultEpsilon), "shape=%v", s)
	}
}

// TestMultiplyBLASIdentity verifies the identity laws through the backend.
func TestMultiplyBLASIdentity(t *testing.T) {
	a := mustDense(t, 4, 3)
	fillDenseRand(t, a, 99)

	iRight, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	got, err := matrix.MultiplyBLAS(a, iRight)
	require.NoError(t, err)
	require.True(t, matrix.EqualApprox(got, a, matrix.DefaultEpsilon)) // A×I == A
}

// TestMultiplyBLASShape verifies the contracted output shape.
func TestMultiplyBLASShape(t *testing.T) {
	a := mustDense(t, 3, 7)
	b := mustDense(t, 7, 2)

	c, err := matrix.MultiplyBLAS(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, c.Rows()) // (3×7) × (7×2) => 3×2
	require.Equal(t, 2, c.Cols())
}
