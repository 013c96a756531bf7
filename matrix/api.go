// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense operands to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use Multiply with WithAlgorithm/WithTileSize when the kernel choice is
//     data-driven; call the concrete kernels directly when comparing them.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMultiplyNaive = "MultiplyNaive"
	opMultiplyTile  = "MultiplyTile"
	opMultiplyBLAS  = "MultiplyBLAS"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of New with an intention-revealing name.
// Complexity: O(r*c) zero-init.
//
// Note: Returns (*Dense, error) to surface ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return New(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: Use as a neutral multiplication element in kernel validation.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	I, err := New(n, n) // O(1) alloc + O(n^2) zeroing
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, 1.0) // Set is bounds-safe; error is not expected after shape validation
	}

	// Return the identity matrix.
	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Complexity: O(1) alloc + O(rc) zeroing. Handy to preallocate staging buffers.
func ZerosLike(m Matrix) (*Dense, error) {
	// Read shape once and call New with the same dimensions.
	return New(m.Rows(), m.Cols()) // errors (if any) bubble up
}

// ---------- Comparison ----------

// Equal reports exact elementwise equality of a and b (shape included).
// Thin alias over Dense.Equal for API discoverability; nil equals nil.
// Complexity: O(r*c).
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}

// EqualApprox reports whether a and b share a shape and every pair of
// corresponding elements differs by at most eps in absolute value.
// Intended for cross-kernel comparison where summation order differs
// (BLAS vs reference): use DefaultEpsilon unless the data demands otherwise.
// Complexity: O(r*c) worst case; O(1) on shape mismatch.
//
// AI-Hints:
//   - Exact equality across kernels is only guaranteed when all inputs and
//     partial sums are exactly representable (e.g., small integers).
func EqualApprox(a, b *Dense, eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false // shape participates in equality
	}
	for k := range a.data { // flat walk; layouts are identical by construction
		if math.Abs(a.data[k]-b.data[k]) > eps {
			return false
		}
	}

	return true
}

// ---------- Multiply dispatch ----------

// Multiply computes a×b with the kernel selected through options.
// MAIN DESCRIPTION:
//   - Dispatch facade over the three kernels; defaults to the reference one.
//
// Implementation:
//   - Stage 1: gatherOptions (defaults: AlgNaive, DefaultTileSize).
//   - Stage 2: forward to the concrete kernel; tile size applies to AlgTile only.
//
// Behavior highlights:
//   - Identical validation and failure contract as the concrete kernels;
//     the facade adds no semantics of its own.
//
// Inputs:
//   - a, b : operands (a.Cols() must equal b.Rows()).
//   - opts : WithAlgorithm, WithTileSize.
//
// Returns:
//   - *Dense, or nil plus a wrapped error from the selected kernel.
//
// Complexity:
//   - Time O(m*n*p), Space O(m*p); constants depend on the kernel.
func Multiply(a, b Matrix, opts ...Option) (*Dense, error) {
	// Resolve dispatch policy over documented defaults.
	o := gatherOptions(opts...)

	switch o.algorithm {
	case AlgTile:
		return MultiplyTile(a, b, o.tileSize)
	case AlgBLAS:
		return MultiplyBLAS(a, b)
	default: // AlgNaive; WithAlgorithm already rejected unknown values
		return MultiplyNaive(a, b)
	}
}

// Product is an alias for MultiplyNaive: canonical matrix product a × b.
// Complexity: O(m*n*p).
func Product(a, b Matrix) (*Dense, error) { return MultiplyNaive(a, b) }
