// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors (invalid Option arguments).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf at the facade —
// callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions is returned when a requested shape is negative on
	// either axis. Zero-dimension matrices (0×c, r×0, 0×0) are valid and do
	// NOT trigger this error.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrLengthMismatch is returned by the flat-slice constructor when the
	// supplied value sequence does not hold exactly rows*cols elements.
	ErrLengthMismatch = errors.New("matrix: flat data length mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions for a
	// multiply, i.e. a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidTileSize is returned by the blocked multiply when tileSize
	// is zero or negative. A zero-size block makes the tile loops
	// non-progressing, so the kernel rejects it up front.
	ErrInvalidTileSize = errors.New("matrix: tile size must be > 0")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
