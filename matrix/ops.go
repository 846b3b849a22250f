// Package matrix: universal operations on any Matrix implementation —
// element-wise addition and subtraction, the standard matrix product,
// transpose, scalar scaling, and tolerance comparison. All functions perform
// strict fail-fast validation and return clear errors on dimension
// mismatches. Results are always freshly allocated Dense matrices; operands
// are never mutated.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps an underlying error with the given operation tag.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// addSub computes C = A + sign·B for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation, and fast-path.
// Inputs must have identical shapes; a fresh Dense is allocated and neither
// operand is mutated. A failed call allocates no observable result.
// Complexity: O(r·c) time and memory.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	// Stage 1: Validate inputs non-nil
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// Validate shapes match
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// direct element-wise combination on backing slices
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var (
		i, j   int // loop iterators
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j)            // safe: bounds ensured
			bv, _ = b.At(i, j)            // safe: same shape
			_ = res.Set(i, j, av+sign*bv) // safe: within bounds
		}
	}

	// Stage 4: Return result
	return res, nil
}

// Add returns a new Matrix containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Stage 4 (Finalize): return result.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a new Matrix containing the element-wise difference a - b.
// Same contract as Add; see addSub for the staged implementation.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-checks and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense of shape (a.Rows × b.Cols).
// Stage 3 (Execute): triple loop, with i→k→j fast-path for *Dense.
// Stage 4 (Finalize): return result.
// NaN and ±Inf propagate per ordinary float64 arithmetic.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·n·c) time and O(r·c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k) // safe: bounds ensured
				bv, _ = b.At(k, j) // safe: inner dims match
				current += av * bv // accumulate product
			}
			_ = res.Set(i, j, current)
		}
	}

	// Stage 4: Return result
	return res, nil
}

// Transpose returns a new Matrix where rows and columns of m are swapped.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Stage 4 (Finalize): return result.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func Transpose(m Matrix) (Matrix, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 2: Allocate result Dense with flipped dimensions
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Stage 3: Fast-path for Dense → Dense
	var i, j int // loop iterators
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)    // safe: bounds ensured
			_ = res.Set(j, i, v) // safe: within bounds
		}
	}

	// Stage 4: Return result
	return res, nil
}

// Scale returns a new Matrix where each element of m is multiplied by alpha.
// Stage 1 (Validate): nil-check.
// Stage 2 (Prepare): allocate Dense(rows×cols).
// Stage 3 (Execute): flat fast-path for *Dense or generic loop.
// Stage 4 (Finalize): return result.
// Errors: ErrNilMatrix.
// Complexity: O(r·c) time and memory.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Stage 3: Fast-path for Dense → Dense
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}
		return res, nil
	}

	// Fallback: generic interface loop
	var (
		i, j int // loop iterators
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, _ = m.At(i, j)          // safe: bounds ensured
			_ = res.Set(i, j, v*alpha) // safe: within bounds
		}
	}

	// Stage 4: Return result
	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true, nil) if all elements satisfy the relation; (false, nil) otherwise.
// Negative tolerances are normalized to their absolute values; NaN or ±Inf
// tolerances are rejected with ErrNaNInf.
// Errors: ErrNaNInf, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r·c) time, O(1) space. Deterministic, early-exit on first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	// Normalize tolerances to non-negative finite values.
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	// Validate presence and shape equality using central validators.
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// Read shape once (O(1)).
	rows, cols := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols // total number of elements
			for idx := 0; idx < n; idx++ {
				// Check |a-b| ≤ atol + rtol·|b|.
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}
			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j) // read a(i,j)
			bv, _ = b.At(i, j) // read b(i,j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
