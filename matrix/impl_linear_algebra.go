// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Dense and Vector:
// element-wise addition/subtraction, matrix product, scalar scaling,
// transpose and matrix-vector product. All kernels perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical arithmetic kernels used across the module.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Operands are never mutated; every result is a freshly allocated value.
//   - Loops run over the flat row-major buffers in fixed order, so results are
//     bit-for-bit reproducible for identical inputs.

package matrix

import (
	"fmt"

	"github.com/viterin/vek"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opTranspose   = "Transpose"
	opCopy        = "CopyFrom"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opPinv        = "PseudoInverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = m + sign*rhs for sign ∈ {+1, -1}.
// Shared by Add/Sub: one validation, one allocation, one flat loop.
func (m *Dense) addSub(rhs *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(m, rhs); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx := range m.data { // deterministic 0..n-1
		res.data[idx] = m.data[idx] + sign*rhs.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum m + rhs into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func (m *Dense) Add(rhs *Dense) (*Dense, error) { return m.addSub(rhs, +1, opAdd) }

// Sub computes the element-wise difference m - rhs into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func (m *Dense) Sub(rhs *Dense) (*Dense, error) { return m.addSub(rhs, -1, opSub) }

// Mul computes the matrix product m × rhs.
//
//	out(i,j) = Σ_k m(i,k)·rhs(k,j)
//
// Implementation:
//   - Stage 1: validate m.Cols == rhs.Rows.
//   - Stage 2: i→k→j over row-major strides; each out(i,j) still accumulates
//     k in ascending order, matching the textbook triple loop.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (inner dimensions disagree).
// Complexity: Time O(r*n*c), Space O(r*c).
func (m *Dense) Mul(rhs *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, rhs); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := m.r, m.c, rhs.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}

	var (
		i, j, k    int
		av         float64
		rowA, rowB []float64
		rowR       []float64
	)
	for i = 0; i < aRows; i++ {
		rowA = m.data[i*aCols : (i+1)*aCols]
		rowR = res.data[i*bCols : (i+1)*bCols]
		for k = 0; k < aCols; k++ {
			av = rowA[k]
			rowB = rhs.data[k*bCols : (k+1)*bCols]
			for j = 0; j < bCols; j++ {
				rowR[j] += av * rowB[j]
			}
		}
	}

	return res, nil
}

// Scale returns alpha·m as a fresh Dense.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense {
	return &Dense{r: m.r, c: m.c, data: vek.MulNumber(m.data, alpha)}
}

// Transpose returns mᵀ (c×r) as a fresh Dense.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// MulVec computes y = m·x.
// Each y(i) is the dot product of row i with x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (x.Len() != Cols()).
// Complexity: O(r*c).
func (m *Dense) MulVec(x *Vector) (*Vector, error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		y[i] = vek.Dot(m.data[i*m.c:(i+1)*m.c], x.data)
	}

	return &Vector{data: y}, nil
}

// IsSymmetric reports whether m is square and |m(i,j) - m(j,i)| ≤ eps for all
// pairs, with eps taken from WithEpsilon (default DefaultEpsilon).
// Complexity: O(n²).
func (m *Dense) IsSymmetric(opts ...Option) bool {
	o := gatherOptions(opts...)

	return ValidateSymmetric(m, o.eps) == nil
}
