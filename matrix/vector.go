// SPDX-License-Identifier: MIT

// Package matrix - Vector storage & dual-convention accessors.
//
// Purpose:
//   - Provide a fixed-length dense vector with exclusive ownership of its buffer.
//   - Expose two index conventions over ONE zero-based slice:
//     At/Set take i ∈ [0, n), At1/Set1 take i ∈ [1, n] and address slot i-1.
//   - Keep value semantics: arithmetic always returns a fresh Vector.
//
// Element-wise kernels delegate to github.com/viterin/vek, which dispatches to
// SIMD code paths when the CPU supports them.
//
// Complexity quicksheet:
//   - NewVector: O(n); At/Set/At1/Set1: O(1); Add/Sub/Scale/Neg/Dot/Norm: O(n).

package matrix

import (
	"fmt"
	"strings"

	"github.com/viterin/vek"
)

// ---------- error context tags ----------

const (
	ctxVecAt   = "At"
	ctxVecSet  = "Set"
	ctxVecAt1  = "At1"
	ctxVecSet1 = "Set1"
)

// Operation tags for Vector arithmetic.
const (
	opVecAdd  = "Vector.Add"
	opVecSub  = "Vector.Sub"
	opVecDot  = "Vector.Dot"
	opVecCopy = "Vector.CopyFrom"
)

// vectorErrorf wraps an error with a uniform Vector context and the offending index.
func vectorErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, idx, err)
}

// Vector is a fixed-length dense vector of float64 values.
// The zero value is not usable; construct with NewVector or NewVectorFrom.
type Vector struct {
	data []float64 // exclusive backing storage, len == size
}

var _ fmt.Stringer = (*Vector)(nil)

// NewVector returns a zero-filled vector of length n.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n).
func NewVector(n int) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Vector{data: make([]float64, n)}, nil
}

// NewVectorFrom returns a vector holding a copy of vals.
// Errors: ErrInvalidDimensions when vals is empty.
// Complexity: O(n).
func NewVectorFrom(vals ...float64) (*Vector, error) {
	if len(vals) == 0 {
		return nil, ErrInvalidDimensions
	}
	buf := make([]float64, len(vals))
	copy(buf, vals)

	return &Vector{data: buf}, nil
}

// Len returns the number of elements. Complexity: O(1).
func (v *Vector) Len() int { return len(v.data) }

// At returns element i using the zero-based convention, i ∈ [0, Len()).
// Errors: ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set writes element i using the zero-based convention, i ∈ [0, Len()).
// Errors: ErrOutOfRange.
func (v *Vector) Set(i int, val float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	v.data[i] = val

	return nil
}

// At1 returns element i using the one-based convention, i ∈ [1, Len()].
// At1(1) and At(0) read the same slot.
// Errors: ErrOutOfRange.
func (v *Vector) At1(i int) (float64, error) {
	if i < 1 || i > len(v.data) {
		return 0, vectorErrorf(ctxVecAt1, i, ErrOutOfRange)
	}

	return v.data[i-1], nil
}

// Set1 writes element i using the one-based convention, i ∈ [1, Len()].
// Errors: ErrOutOfRange.
func (v *Vector) Set1(i int, val float64) error {
	if i < 1 || i > len(v.data) {
		return vectorErrorf(ctxVecSet1, i, ErrOutOfRange)
	}
	v.data[i-1] = val

	return nil
}

// Clone returns an independent deep copy. Complexity: O(n).
func (v *Vector) Clone() *Vector {
	buf := make([]float64, len(v.data))
	copy(buf, v.data)

	return &Vector{data: buf}
}

// CopyFrom assigns src into v, reallocating when the sizes differ.
// After the call v and src share no storage.
// Errors: ErrNilMatrix when src is nil.
// Complexity: O(n).
func (v *Vector) CopyFrom(src *Vector) error {
	if src == nil {
		return matrixErrorf(opVecCopy, ErrNilMatrix)
	}
	if v == src {
		return nil
	}
	if len(v.data) != len(src.data) {
		v.data = make([]float64, len(src.data))
	}
	copy(v.data, src.data)

	return nil
}

// Data returns a copy of the elements in zero-based order.
func (v *Vector) Data() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Pos is unary plus: a fresh copy of v.
func (v *Vector) Pos() *Vector { return v.Clone() }

// Neg is unary minus: a fresh vector holding -v.
func (v *Vector) Neg() *Vector { return &Vector{data: vek.Neg(v.data)} }

// Scale returns alpha·v as a fresh vector.
func (v *Vector) Scale(alpha float64) *Vector {
	return &Vector{data: vek.MulNumber(v.data, alpha)}
}

// Add returns v + rhs.
// Errors: ErrNilMatrix, ErrDimensionMismatch (sizes differ).
// Complexity: O(n).
func (v *Vector) Add(rhs *Vector) (*Vector, error) {
	if err := ValidateVecLen(rhs, len(v.data)); err != nil {
		return nil, matrixErrorf(opVecAdd, err)
	}

	return &Vector{data: vek.Add(v.data, rhs.data)}, nil
}

// Sub returns v - rhs.
// Errors: ErrNilMatrix, ErrDimensionMismatch (sizes differ).
// Complexity: O(n).
func (v *Vector) Sub(rhs *Vector) (*Vector, error) {
	if err := ValidateVecLen(rhs, len(v.data)); err != nil {
		return nil, matrixErrorf(opVecSub, err)
	}

	return &Vector{data: vek.Sub(v.data, rhs.data)}, nil
}

// Dot returns the inner product vᵀ·rhs.
// Errors: ErrNilMatrix, ErrDimensionMismatch (sizes differ).
// Complexity: O(n).
func (v *Vector) Dot(rhs *Vector) (float64, error) {
	if err := ValidateVecLen(rhs, len(v.data)); err != nil {
		return 0, matrixErrorf(opVecDot, err)
	}

	return vek.Dot(v.data, rhs.data), nil
}

// Norm returns the Euclidean norm ‖v‖₂.
func (v *Vector) Norm() float64 { return vek.Norm(v.data) }

// String renders the vector as "[a, b, c]".
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtRowOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteString("]")

	return sb.String()
}
