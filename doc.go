// Package matmul is a compact playground for dense matrix-matrix
// multiplication: one value type, three interchangeable kernels, and a
// numeric-equivalence contract between them.
//
// 🚀 What is matmul?
//
//	A small, deterministic library that brings together:
//		• Dense: row-major float64 storage with safe accessors, deep copy,
//		  move semantics, exact equality and flat-slice conversion
//		• MultiplyNaive: the triple-loop reference kernel (ground truth)
//		• MultiplyTile: a cache-blocked kernel, exact for every tile size
//		• MultiplyBLAS: a narrow adapter over gonum's blas64 GEMM
//
// ✨ Why choose matmul?
//
//   - One mathematical product, three performance profiles — compare them
//     head to head on your own shapes and hardware
//   - Rock-solid contracts – sentinel errors, errors.Is matching, no panics
//     on user input, no partially computed results
//   - Pure Go core – cgo stays opt-in behind the blasnative subpackage
//   - Deterministic – fixed loop orders, documented summation order
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/     — the Dense value type, validators, options and the three kernels
//	blasnative/ — opt-in registration of a system BLAS (Accelerate/OpenBLAS)
//
// Quick example:
//
//	a, _ := matrix.NewFromSlice(2, 2, []float64{1, 2, 3, 4})
//	b, _ := matrix.NewFromSlice(2, 2, []float64{5, 6, 7, 8})
//	c, _ := matrix.MultiplyNaive(a, b) // [[19, 22], [43, 50]]
//	t, _ := matrix.MultiplyTile(a, b, 2)
//	_ = c.Equal(t)                     // true: same summation, same bits
//
// Start with matrix.New or matrix.NewFromSlice, pick a kernel (or let the
// Multiply facade dispatch via options), and compare results with Equal or
// EqualApprox.
package matmul
