// Package densemat is a small, bounds-checked dense matrix library for
// float64 values — a single container with the everyday operations and
// nothing speculative on top.
//
// 🚀 What is densemat?
//
//	A deliberately compact library that brings together:
//		• Dense container: row-major float64 storage with O(1) checked access
//		• Constructors: zero matrix, literal rows, identity
//		• Arithmetic: Add, Sub, Mul (standard product), Scale, Transpose
//		• Comparison: AllClose with absolute + relative tolerances
//		• Debug output: Stringer rendering and a writer-based dump
//		• Interop: lossless conversion to and from gonum's mat.Dense
//
// ✨ Why choose densemat?
//
//   - Fail-fast contracts – every misuse returns a sentinel error, never a panic
//   - Value semantics – operations return fresh results; operands are never mutated
//   - Predictable – fixed loop orders, no hidden allocations beyond the result
//   - Extensible – ops accept the Matrix interface, so custom layouts plug in
//
// Everything lives in one subpackage:
//
//	matrix/ — the Dense container, package-level operations, and gonum bridges
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.Mul(a, b) // [[19, 22], [43, 50]]
//
// See matrix/doc.go and the Example tests for more.
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
