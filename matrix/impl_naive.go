// SPDX-License-Identifier: MIT

// Package matrix: reference matrix-matrix multiply kernel.
//
// Purpose:
//   - Define the ground-truth numeric result for the package: a plain
//     triple-nested accumulation with a fixed, documented summation order.
//   - Serve as the baseline every other kernel is validated against.
//
// Determinism:
//   - For each output cell (i,k) the reduction index j runs 0..inner-1 in
//     increasing order, accumulating from zero. Kernels that reorder the
//     summation (tile, BLAS) may differ in the last floating-point bits even
//     though the mathematical result is identical.

package matrix

import "fmt"

// MultiplyNaive computes C = A×B with the canonical triple loop.
// MAIN DESCRIPTION:
//   - Reference kernel; defines the canonical summation order (j ascending).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate zero-filled result.
//   - Stage 2: fast path when both operands are *Dense — flat-slice walk with
//     hoisted row offsets, no interface calls in the hot loop.
//   - Stage 3: generic fallback through At/Set for custom Matrix impls,
//     preserving the identical i→k→j accumulation order.
//
// Behavior highlights:
//   - Operands are never mutated; the result is freshly allocated.
//   - Zero-dimension operands short-circuit to the correctly shaped empty or
//     zero result without entering the loops.
//   - No internal parallelism; the call blocks until the product is complete.
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
//   - Time O(m*n*p), Space O(m*p) for the result.
//
// AI-Hints:
//   - Use this kernel as the oracle in tests; compare the tiled kernel with
//     Equal on exactly representable inputs and BLAS with EqualApprox.
func MultiplyNaive(a, b Matrix) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyNaive, err)
	}

	// Allocate the zero-initialized result.
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := New(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMultiplyNaive, err)
	}
	// Degenerate shapes produce an empty or all-zero product; nothing to do.
	if aRows == 0 || bCols == 0 || inner == 0 {
		return res, nil
	}

	var (
		i, j, k int     // loop iterators: i rows, k result cols, j reduction
		av, sum float64 // hoisted left factor / running accumulator
	)
	// Fast-path for two Dense operands: walk the flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*inner + j; db.data layout: j*bCols + k.
			var rowOffsetA, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * inner
				rowOffsetR = i * bCols
				for k = 0; k < bCols; k++ {
					sum = 0 // accumulate from zero, j ascending
					for j = 0; j < inner; j++ {
						sum += da.data[rowOffsetA+j] * db.data[j*bCols+k]
					}
					res.data[rowOffsetR+k] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop with the same accumulation order.
	var bv float64
	for i = 0; i < aRows; i++ {
		for k = 0; k < bCols; k++ {
			sum = 0
			for j = 0; j < inner; j++ {
				av, err = a.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opMultiplyNaive, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				bv, err = b.At(j, k)
				if err != nil {
					return nil, matrixErrorf(opMultiplyNaive, fmt.Errorf("At(%d,%d): %w", j, k, err))
				}
				sum += av * bv // accumulate product
			}
			res.data[i*bCols+k] = sum // res is freshly allocated *Dense; direct write is safe
		}
	}

	return res, nil
}
