// Package blasnative routes matrix.MultiplyBLAS to a native BLAS library.
//
// Importing this package for side effect in a cgo-enabled build registers
// the netlib implementation with gonum's blas64 layer, which makes
// MultiplyBLAS call into the system BLAS (Accelerate on macOS, OpenBLAS on
// Linux):
//
//	import _ "github.com/katalvlaran/matmul/blasnative"
//
// Without cgo the import is a no-op and the blas64 default (gonum's pure-Go
// implementation) stays in effect, so the core library remains cgo-free.
package blasnative
