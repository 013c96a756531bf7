// SPDX-License-Identifier: MIT

// Package matrix: cache-blocked (tiled) matrix-matrix multiply kernel.
//
// Purpose:
//   - Partition the three loop dimensions into tileSize×tileSize blocks so
//     each inner block triple works on data that stays resident in cache.
//   - Stay mathematically identical to the reference kernel for every block
//     size and matrix shape; only the floating-point summation order changes.
//
// Blocking layout:
//   - Outer loop over row blocks of the result, middle loop over reduction
//     blocks, inner loop over column blocks of the result. The final block in
//     each dimension is clipped to the matrix boundary.
//   - Inside a block triple, the left factor a(i,j) is hoisted out of the
//     innermost column loop, turning it into a scaled row update that walks
//     both the result row and the right operand row contiguously.

package matrix

import "fmt"

// MultiplyTile computes C = A×B using square cache tiles of edge tileSize.
// MAIN DESCRIPTION:
//   - Same contract and output shape as MultiplyNaive; reordered summation.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) and ValidateTileSize(tileSize);
//     allocate the zero-filled result.
//   - Stage 2: fast path for two *Dense operands — block loops over flat
//     buffers with row-offset hoisting.
//   - Stage 3: generic fallback through At for custom Matrix impls with the
//     identical block order, accumulating into the result buffer.
//
// Behavior highlights:
//   - tileSize <= 0 fails with ErrInvalidTileSize before any allocation:
//     a zero tile would make the block cursors non-progressing.
//   - Correctness never depends on the tile size; throughput does. Every
//     tested tile size must reproduce MultiplyNaive exactly on inputs whose
//     partial sums are exactly representable.
//   - Operands are never mutated; no internal parallelism.
//
// Inputs:
//   - a       : left operand (m×n).
//   - b       : right operand (n×p).
//   - tileSize: positive block edge shared by all three loop dimensions.
//
// Returns:
//   - *Dense (m×p), or nil plus a wrapped error.
//
// Errors:
//   - ErrNilMatrix          (nil operand).
//   - ErrDimensionMismatch  (a.Cols() != b.Rows()).
//   - ErrInvalidTileSize    (tileSize <= 0).
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p) for the result.
//
// AI-Hints:
//   - Pick tileSize so three tileSize² float64 blocks fit in the L1 data
//     cache (64 is a sound default on current hardware, see DefaultTileSize).
func MultiplyTile(a, b Matrix, tileSize int) (*Dense, error) {
	// Validate operands via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyTile, err)
	}
	// Reject non-progressing tile edges before allocating anything.
	if err := ValidateTileSize(tileSize); err != nil {
		return nil, matrixErrorf(opMultiplyTile, err)
	}

	// Allocate the zero-initialized result.
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := New(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMultiplyTile, err)
	}
	// Degenerate shapes produce an empty or all-zero product; nothing to do.
	if aRows == 0 || bCols == 0 || inner == 0 {
		return res, nil
	}

	var (
		i0, j0, k0       int // block cursors: rows, reduction, result cols
		iEnd, jEnd, kEnd int // clipped block boundaries
		i, j, k          int // in-block iterators
		av               float64
	)
	// Fast-path for two Dense operands: walk the flat buffers directly.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i0 = 0; i0 < aRows; i0 += tileSize { // row blocks of the result
				iEnd = min(i0+tileSize, aRows)
				for j0 = 0; j0 < inner; j0 += tileSize { // reduction blocks
					jEnd = min(j0+tileSize, inner)
					for k0 = 0; k0 < bCols; k0 += tileSize { // column blocks of the result
						kEnd = min(k0+tileSize, bCols)

						// Block triple: same elementwise accumulation as the
						// reference kernel restricted to this index window.
						for i = i0; i < iEnd; i++ {
							rowOffsetA = i * inner
							rowOffsetR = i * bCols
							for j = j0; j < jEnd; j++ {
								av = da.data[rowOffsetA+j] // hoisted left factor
								rowOffsetB = j * bCols
								for k = k0; k < kEnd; k++ {
									res.data[rowOffsetR+k] += av * db.data[rowOffsetB+k]
								}
							}
						}
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface access with the identical block order.
	var bv float64
	for i0 = 0; i0 < aRows; i0 += tileSize {
		iEnd = min(i0+tileSize, aRows)
		for j0 = 0; j0 < inner; j0 += tileSize {
			jEnd = min(j0+tileSize, inner)
			for k0 = 0; k0 < bCols; k0 += tileSize {
				kEnd = min(k0+tileSize, bCols)

				for i = i0; i < iEnd; i++ {
					for j = j0; j < jEnd; j++ {
						av, err = a.At(i, j)
						if err != nil {
							return nil, matrixErrorf(opMultiplyTile, fmt.Errorf("At(%d,%d): %w", i, j, err))
						}
						for k = k0; k < kEnd; k++ {
							bv, err = b.At(j, k)
							if err != nil {
								return nil, matrixErrorf(opMultiplyTile, fmt.Errorf("At(%d,%d): %w", j, k, err))
							}
							res.data[i*bCols+k] += av * bv // res is a fresh *Dense; direct write is safe
						}
					}
				}
			}
		}
	}

	return res, nil
}
