// Package matrix_test: shared helpers for unit tests and benchmarks.
// Helpers fail the owning test/benchmark immediately on unexpected errors so
// individual tests stay focused on the property under test.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matmul/matrix"
)

// tb is the common subset of *testing.T and *testing.B the helpers need.
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// mustDense allocates a zero r×c matrix or aborts the test.
func mustDense(t tb, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewZeros(r, c) // fast path alloc + zero
	if err != nil {
		t.Fatalf("NewZeros(%d,%d): %v", r, c, err)
	}
	return d
}

// mustFromSlice builds a matrix from flat row-major values or aborts the test.
func mustFromSlice(t tb, r, c int, values []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewFromSlice(r, c, values)
	if err != nil {
		t.Fatalf("NewFromSlice(%d,%d,len=%d): %v", r, c, len(values), err)
	}
	return d
}

// fillDenseRand fills d with deterministic pseudo-random values in [-1,1).
func fillDenseRand(t tb, d *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := d.Rows(), d.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := d.Set(i, j, rng.Float64()*2-1); err != nil { // [-1,1)
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// fillDenseSmallInts fills d with deterministic small integers in [-4,4].
// Small-integer inputs keep every partial sum exactly representable, so
// cross-kernel comparisons may use exact equality.
func fillDenseSmallInts(t tb, d *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := d.Rows(), d.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := d.Set(i, j, float64(rng.Intn(9)-4)); err != nil { // [-4,4]
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// atOrFail reads d(i,j) or aborts the test; keeps property loops terse.
func atOrFail(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}
