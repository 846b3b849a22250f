// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the tests.
//   • Keep all data finite and well-formed unless a test says otherwise.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// hide wraps any Matrix to mask its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (generic fallback) paths;
// wrap ONLY the operand you want to de-opt to isolate path differences.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or fails the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	return m
}

// mustFromRows builds a *Dense from literal rows or fails the test.
func mustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}
	return m
}

// fillDenseRand populates m with deterministic pseudo-random values in [-1, 1).
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// requireEqualElems compares two matrices elementwise (exact float equality)
// and reports the first differing position.
func requireEqualElems(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	if want.Rows() != got.Rows() || want.Cols() != got.Cols() {
		tb.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			want.Rows(), want.Cols(), got.Rows(), got.Cols())
	}
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, err := want.At(i, j)
			if err != nil {
				tb.Fatalf("want.At(%d,%d): %v", i, j, err)
			}
			gv, err := got.At(i, j)
			if err != nil {
				tb.Fatalf("got.At(%d,%d): %v", i, j, err)
			}
			if wv != gv {
				tb.Fatalf("element (%d,%d): want %g, got %g", i, j, wv, gv)
			}
		}
	}
}
