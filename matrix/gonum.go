// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Bridge this package's Dense container to gonum's mat.Dense, so callers
//    can hand matrices to BLAS-backed routines (decompositions, solvers)
//    that are deliberately out of scope here.
//
// Notes:
//  - Conversions always deep-copy; the two libraries never share storage.
//  - gonum panics on misuse where this package returns errors, so both
//    directions validate before touching gonum.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum converts m into a freshly allocated *mat.Dense.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate a flat row-major buffer.
// Stage 3 (Execute): flat copy for *Dense, At-loop otherwise.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func ToGonum(m Matrix) (*mat.Dense, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToGonum", err)
	}

	// Stage 2: Allocate the row-major buffer gonum will own.
	rows, cols := m.Rows(), m.Cols()
	buf := make([]float64, rows*cols)

	// Stage 3: Fast-path — both layouts are row-major, one copy suffices.
	if dm, ok := m.(*Dense); ok {
		copy(buf, dm.data)
		return mat.NewDense(rows, cols, buf), nil
	}

	// Generic fallback via At (bounds-safe).
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j) // safe: bounds ensured
			buf[i*cols+j] = v
		}
	}

	return mat.NewDense(rows, cols, buf), nil
}

// FromGonum converts any gonum mat.Matrix into a freshly allocated *Dense.
// Stage 1 (Validate): nil-check and positive dimensions.
// Stage 2 (Prepare): allocate the Dense result.
// Stage 3 (Execute): element copy via the gonum accessor.
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(r·c) time and memory.
func FromGonum(src mat.Matrix) (*Dense, error) {
	// Stage 1: Validate source presence and shape.
	if src == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	rows, cols := src.Dims()

	// Stage 2: Allocate result (rejects non-positive dims).
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}

	// Stage 3: Copy elements; mat.Matrix.At panics only out of bounds,
	// which the loop ranges exclude.
	for i := 0; i < rows; i++ {
		base := i * cols // row base offset
		for j := 0; j < cols; j++ {
			res.data[base+j] = src.At(i, j)
		}
	}

	return res, nil
}
