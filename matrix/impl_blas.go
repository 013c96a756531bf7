// SPDX-License-Identifier: MIT

// Package matrix: vendor-optimized multiply via gonum's BLAS interface.
//
// Purpose:
//   - Delegate the same mathematical product to the registered blas64
//     implementation (pure-Go gonum by default; a native library when the
//     blasnative subpackage is imported with cgo enabled).
//   - Keep the adapter narrow: validate the precondition, allocate the
//     zero-initialized result, marshal the three flat buffers plus their row
//     strides into the GEMM call contract, nothing else.
//
// Numeric contract:
//   - GEMM is C = alpha*A*B + beta*C with alpha=1, beta=0 and no
//     transposition. The backend may reorder summation or parallelize
//     internally, so results agree with MultiplyNaive within a small
//     floating-point tolerance rather than bit-exactly; compare with
//     EqualApprox. The call blocks until the backend completes.

package matrix

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// asDense materializes any Matrix as *Dense without copying when possible.
// A *Dense passes through; other implementations are densified via At with
// a fixed i→j order.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix, tag string) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := New(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ { // fixed order for determinism
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// MultiplyBLAS computes C = A×B through the registered blas64 implementation.
// MAIN DESCRIPTION:
//   - Optimized-backend kernel; same contract and output shape as
//     MultiplyNaive, tolerance-level agreement.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate the zero-filled result.
//   - Stage 2: densify non-Dense operands (flat buffers are the backend's
//     call contract).
//   - Stage 3: wrap the three buffers as row-major blas64.General values
//     (stride = column count) and issue Gemm(NoTrans, NoTrans, 1, a, b, 0, c).
//
// Behavior highlights:
//   - Operands are read-only for the duration of the call; the result is
//     freshly allocated and exclusively owned by the caller.
//   - Zero-dimension operands short-circuit before reaching the backend,
//     which requires strictly positive strides.
//   - Internal parallelism/vectorization of the backend is opaque and
//     non-cancelable; no goroutines are spawned here.
//
// Inputs:
//   - a: left operand (m×n).
//   - b: right operand (n×p).
//
// Returns:
//   - *Dense (m×p), or nil plus a wrapped error.
//
// Errors:
//   - ErrNilMatrix          (nil operand).
//   - ErrDimensionMismatch  (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(m*n*p) (backend-dependent constants), Space O(m*p).
//
// AI-Hints:
//   - Import _ "github.com/katalvlaran/matmul/blasnative" in a cgo build to
//     route this call to a system BLAS (Accelerate/OpenBLAS).
func MultiplyBLAS(a, b Matrix) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyBLAS, err)
	}

	// Allocate the zero-initialized result.
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := New(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMultiplyBLAS, err)
	}
	// Degenerate shapes: blas64.General requires positive strides, so the
	// empty/zero product is returned without touching the backend.
	if aRows == 0 || bCols == 0 || inner == 0 {
		return res, nil
	}

	// Densify operands; *Dense passes through without copying.
	da, err := asDense(a, opMultiplyBLAS)
	if err != nil {
		return nil, err
	}
	db, err := asDense(b, opMultiplyBLAS)
	if err != nil {
		return nil, err
	}

	// Marshal the row-major buffers into the GEMM call contract.
	ga := blas64.General{Rows: aRows, Cols: inner, Data: da.data, Stride: inner}
	gb := blas64.General{Rows: inner, Cols: bCols, Data: db.data, Stride: bCols}
	gc := blas64.General{Rows: aRows, Cols: bCols, Data: res.data, Stride: bCols}

	// C = 1*A*B + 0*C, no transposition on either operand.
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, ga, gb, 0, gc)

	return res, nil
}
