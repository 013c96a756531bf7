// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return sentinel errors (lightly tagged) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// AI-Hints:
//   - Centralizing validators eliminates inconsistent guard logic across files.
//   - Use ValidateMulCompatible before every multiply kernel to fail fast.
//   - Use ValidateTileSize in blocked kernels to reject non-progressing loops.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateShape – Ensures requested dimensions are non-negative.
// Zero is valid on either axis: a 0×c, r×0 or 0×0 matrix is a legal
// degenerate value with an empty buffer.
//
// Inputs: requested rows and cols.
// Returns nil or wrapped ErrInvalidDimensions.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	// Execute comparisons
	if rows < 0 {
		return validatorErrorf("ValidateShape: Rows", ErrInvalidDimensions)
	}
	if cols < 0 {
		return validatorErrorf("ValidateShape: Columns", ErrInvalidDimensions)
	}

	return nil
}

// ValidateFlatLen ensures the flat slice holds exactly rows*cols elements.
// A nil slice is acceptable for a zero-element shape.
//
// Inputs: candidate flat data and target shape.
// Returns nil or wrapped ErrLengthMismatch.
// Complexity: O(1).
func ValidateFlatLen(data []float64, rows, cols int) error {
	// Check the exact expected length against the shape product.
	if len(data) != rows*cols {
		return validatorErrorf("ValidateFlatLen", ErrLengthMismatch) // flat data must match rows*cols
	}

	return nil
}

// ValidateMulCompatible – Ensures a and b are conformable for a×b.
//
// Implementation: fixed sequence NotNil(a) → NotNil(b) → inner-dimension check.
// Inputs: Two Matrix values.
// Returns nil, or wrapped ErrNilMatrix / ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use as the first step of every multiply kernel.
func ValidateMulCompatible(a, b Matrix) error {
	// Reject nil operands first for precise diagnostics.
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// The left operand's column count must equal the right operand's row count.
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTileSize – Ensures the tile edge is strictly positive.
// A zero or negative tile makes the block loops non-progressing, so the
// blocked kernel rejects it before allocating anything.
//
// Inputs: requested tile edge.
// Returns nil or wrapped ErrInvalidTileSize.
// Complexity: O(1).
func ValidateTileSize(tileSize int) error {
	// Zero tiles would never advance the block cursors; negative is nonsense.
	if tileSize <= 0 {
		return validatorErrorf("ValidateTileSize", ErrInvalidTileSize)
	}

	return nil
}
