// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction and multiply
// dispatch. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Numeric policy is explicit: validateNaNInf controls whether Set()/ingestion
//     rejects NaN/±Inf. Multiply kernels never produce policy errors themselves;
//     they trust the operand matrices' own ingestion policy.
//   - Dispatch policy applies to the Multiply facade only: the concrete kernels
//     (MultiplyNaive/MultiplyTile/MultiplyBLAS) ignore Options entirely, so the
//     three algorithms stay individually addressable for comparison runs.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by EqualApprox
	// and by tests that compare the BLAS backend against the reference kernel.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// ingestion and Set.
	DefaultValidateNaNInf = true
)

// Dispatch policy for the Multiply facade.
const (
	// DefaultAlgorithm is the kernel the Multiply facade uses when no
	// WithAlgorithm option is supplied. Naive is the canonical reference:
	// its summation order defines the ground-truth result.
	DefaultAlgorithm = AlgNaive

	// DefaultTileSize is the block edge used by the tiled kernel when the
	// Multiply facade selects AlgTile without an explicit WithTileSize.
	// 64×64 float64 blocks keep three active tiles within a typical L1
	// data cache.
	DefaultTileSize = 64
)

// Algorithm selects one of the three multiply kernels in the Multiply facade.
type Algorithm int

const (
	// AlgNaive is the reference triple-loop kernel (canonical summation order).
	AlgNaive Algorithm = iota
	// AlgTile is the cache-blocked kernel; pair with WithTileSize.
	AlgTile
	// AlgBLAS delegates to the registered gonum blas64 implementation.
	AlgBLAS
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicTileSizeInvalid  = "matrix: WithTileSize: tile size must be > 0"
	panicAlgorithmInvalid = "matrix: WithAlgorithm: unknown algorithm"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported in fields to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	// numeric policy
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf

	// multiply dispatch policy
	algorithm Algorithm // DefaultAlgorithm
	tileSize  int       // DefaultTileSize; used only when algorithm == AlgTile
}

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the numeric tolerance eps used by approximate comparison.
// Panics on non-finite or negative eps (programmer error).
// Complexity: O(1).
//
// AI-Hints:
//   - Prefer small positive eps (e.g., 1e-9) for double-precision data.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	// Assign validated epsilon
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation on Set/ingestion.
// This is the default; use WithNoValidateNaNInf to relax.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// The flag propagates only on creation; existing matrices are unaffected.
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithAlgorithm selects the kernel used by the Multiply facade.
// Panics on values outside AlgNaive/AlgTile/AlgBLAS (programmer error).
// Complexity: O(1).
//
// AI-Hints:
//   - Use AlgNaive as the ground truth when validating other kernels.
//   - AlgBLAS results differ from AlgNaive in the last bits; compare with
//     EqualApprox, not Equal.
func WithAlgorithm(alg Algorithm) Option {
	if alg != AlgNaive && alg != AlgTile && alg != AlgBLAS {
		panic(panicAlgorithmInvalid)
	}

	// Assign validated algorithm
	return func(o *Options) { o.algorithm = alg }
}

// WithTileSize sets the block edge for the tiled kernel in the Multiply facade.
// Panics on t <= 0 (programmer error); the explicit MultiplyTile entry point
// reports the same condition as ErrInvalidTileSize instead, because there the
// value may come from user data rather than source code.
// Complexity: O(1).
//
// AI-Hints:
//   - Correctness never depends on the tile size; only throughput does.
//   - Pick t so three t×t float64 blocks fit in the target L1 data cache.
func WithTileSize(t int) Option {
	if t <= 0 {
		panic(panicTileSizeInvalid)
	}

	// Assign validated tile size
	return func(o *Options) { o.tileSize = t }
}

// ---------- Internal helpers ----------

// isNonFinite reports NaN or ±Inf.
// Complexity: O(1).
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// defaultOptions returns the documented default configuration.
// MUST stay in sync with the Default* constants above.
func defaultOptions() Options {
	return Options{
		// numeric policy
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,

		// dispatch policy
		algorithm: DefaultAlgorithm,
		tileSize:  DefaultTileSize,
	}
}

// gatherOptions resolves user options over the documented defaults.
// Deterministic: options apply in order; last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
