// Package matrix provides a dense, row-major float64 matrix value type and
// three interchangeable matrix-matrix multiplication kernels.
//
// The matrix package provides:
//
//   - Dense: a contiguous row-major buffer with safe accessors, deep copy,
//     move-assignment semantics, exact equality and flat-slice conversion.
//   - MultiplyNaive: the triple-loop reference kernel that defines the
//     canonical summation order and the ground-truth numeric result.
//   - MultiplyTile: a cache-blocked kernel, mathematically identical to the
//     reference for every tile size, tuned for memory-cache reuse.
//   - MultiplyBLAS: a narrow adapter delegating to the registered gonum
//     blas64 implementation (pure Go by default; a native BLAS when the
//     blasnative subpackage is imported under cgo).
//
// All three kernels share one contract: operands must be conformable
// (a.Cols() == b.Rows()), operands are never mutated, and each call returns
// a freshly allocated result or a sentinel error — never a partial product.
//
// See the examples in this package and the repository examples/ directory
// for usage patterns and kernel comparison runs.
package matrix
