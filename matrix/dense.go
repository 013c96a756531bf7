// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Support copy-assignment (CopyFrom) and move-assignment (MoveFrom) semantics
//     matching the ownership model of the multiply kernels: deep copies never alias,
//     moves leave the source in the legal empty 0×0 state.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_naive.go / impl_tile.go):
//     operate on the flat data slice directly.
//   - DefaultValidateNaNInf is on; insert only finite values unless you explicitly
//     disable the policy with WithNoValidateNaNInf at construction.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom/ToSlice: O(r*c); MoveFrom: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0; either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>= 0; zero yields an empty buffer)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// New creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options (numeric policy).
//   - Stage 3: allocate zero-filled buffer (make() zero-fills deterministically).
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Degenerate shapes (0×c, r×0, 0×0) are legal and carry an empty buffer.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - opts      : optional numeric policy (WithValidateNaNInf / WithNoValidateNaNInf).
//
// Returns:
//   - *Dense or ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Dense, error) {
	// Validate shape via the central validator.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	// Resolve numeric policy over documented defaults.
	o := gatherOptions(opts...)
	// Allocate a contiguous flat buffer; zero length is legal for empty shapes.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewFromSlice creates an r×c matrix populated from a flat row-major sequence.
// MAIN DESCRIPTION:
//   - Second public constructor: dimensions plus values, consumed row-major.
//
// Implementation:
//   - Stage 1: validate shape, then flat length (rows*cols == len(values)).
//   - Stage 2: allocate and deep-copy values (never alias the caller's slice).
//   - Stage 3: enforce numeric policy over the ingested values when enabled.
//
// Behavior highlights:
//   - The input slice is copied; later caller mutations do not leak in.
//   - Under the finite-only policy a NaN/±Inf element fails the whole
//     construction with ErrNaNInf; no partially ingested matrix escapes.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - values    : exactly rows*cols elements in row-major order (nil legal for 0 elements).
//   - opts      : optional numeric policy overrides.
//
// Returns:
//   - *Dense, or ErrInvalidDimensions / ErrLengthMismatch / ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromSlice(rows, cols int, values []float64, opts ...Option) (*Dense, error) {
	// Validate shape first for precise diagnostics.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	// The flat sequence must agree with the shape product exactly.
	if err := ValidateFlatLen(values, rows, cols); err != nil {
		return nil, err
	}
	// Resolve numeric policy over documented defaults.
	o := gatherOptions(opts...)
	// Numeric policy: reject non-finite values before any allocation escapes.
	if o.validateNaNInf {
		// Loop body is reachable only when rows*cols > 0, so cols > 0 here.
		for k, v := range values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxSet, k/cols, k%cols, ErrNaNInf)
			}
		}
	}
	// Deep-copy into a fresh buffer; the matrix exclusively owns its storage.
	buf := make([]float64, rows*cols)
	copy(buf, values)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods (At/Set) wrap it with
// coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns sentinel error. Out-of-range
//     access is a caller contract violation reported loudly, never a
//     silent zero.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; internal hot paths may index directly.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Policy flag is carried by Clone/CopyFrom (single source of truth).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Independence: mutations of the clone do not affect the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy elements

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// CopyFrom overwrites the receiver with a deep copy of src (copy-assignment).
// MAIN DESCRIPTION:
//   - Assignment semantics: reuse the buffer in place when shapes already
//     match, reallocate to src's shape otherwise.
//
// Implementation:
//   - Stage 1: validate src non-nil; self-copy is a no-op.
//   - Stage 2: if shapes differ, allocate a fresh buffer of src's size.
//   - Stage 3: copy elements and adopt src's numeric policy.
//
// Behavior highlights:
//   - Never aliases src's storage; both matrices stay independent.
//   - In-place fast path avoids allocation for shape-preserving assignment.
//
// Returns:
//   - nil, or ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(r*c); Space O(r*c) only when the shape changes.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return validatorErrorf("Dense.CopyFrom", ErrNilMatrix)
	}
	// Self-copy is a no-op.
	if m == src {
		return nil
	}
	// Reallocate only when the destination shape disagrees.
	if m.r != src.r || m.c != src.c {
		m.data = make([]float64, len(src.data))
		m.r, m.c = src.r, src.c
	}
	copy(m.data, src.data)                // element-wise deep copy
	m.validateNaNInf = src.validateNaNInf // adopt the source policy

	return nil
}

// MoveFrom transfers src's buffer and dimensions into the receiver
// (move-assignment) and leaves src in the legal empty 0×0 state.
// MAIN DESCRIPTION:
//   - Ownership transfer without copying; O(1) regardless of size.
//
// Implementation:
//   - Stage 1: validate src non-nil; self-move is a no-op.
//   - Stage 2: adopt src's fields wholesale, then reset src to 0×0/nil.
//
// Behavior highlights:
//   - The receiver's previous buffer is released to the garbage collector.
//   - Field updates are not interleaved with reads: the receiver adopts all
//     three fields before the source is reset, so neither matrix is ever
//     observed with len(data) != r*c from this goroutine.
//   - Not safe against concurrent mutation of either matrix; callers must
//     synchronize externally when sharing instances across goroutines.
//
// Returns:
//   - nil, or ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) MoveFrom(src *Dense) error {
	if src == nil {
		return validatorErrorf("Dense.MoveFrom", ErrNilMatrix)
	}
	// Self-move is a no-op.
	if m == src {
		return nil
	}
	// Adopt buffer, shape and policy from the source.
	m.r, m.c, m.data = src.r, src.c, src.data
	m.validateNaNInf = src.validateNaNInf
	// Reset the source to the empty state; it remains a valid 0×0 matrix.
	src.r, src.c, src.data = 0, 0, nil

	return nil
}

// Equal reports exact equality: identical shape and bitwise-comparable
// elements (==, not tolerance-based). NaN elements therefore compare
// unequal to themselves, consistent with IEEE-754 semantics.
// Complexity: O(r*c) worst case; O(1) on shape mismatch.
func (m *Dense) Equal(other *Dense) bool {
	if other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false // shape participates in equality
	}
	for k := range m.data { // flat walk; layout is identical by construction
		if m.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// ToSlice returns the elements as a fresh flat row-major slice.
// The returned slice never aliases the matrix's internal buffer.
// Complexity: O(r*c) time and memory.
func (m *Dense) ToSlice() []float64 {
	out := make([]float64, len(m.data)) // independent copy
	copy(out, m.data)

	return out
}

// String provides a readable row-wise dump for diagnostics.
// Iterates rows/cols deterministically, formatting with %g.
// Not for hot paths; intended for logs and debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep) // separate values with comma
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
