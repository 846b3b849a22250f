// Package matrix provides a bounds-checked dense 2-D float64 container
// and its everyday operations.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) checked element access
//     and deep Clone for immutability in algorithm pipelines.
//   - Package-level ops (Add, Sub, Mul, Transpose, Scale, AllClose) that
//     accept any Matrix implementation and return a fresh Dense result.
//   - Conversions to and from gonum's mat.Dense for callers that need
//     BLAS-backed routines beyond this package's scope.
//
// Every misuse surfaces as a package sentinel error matched via errors.Is;
// operations never panic on user input and never mutate their operands.
//
// See the Example tests in this package for usage patterns.
package matrix
