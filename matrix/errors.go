// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/internal/elim"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with fmt.Errorf("ctx: %w", ErrX);
// callers match with errors.Is.
//
// ERROR PRIORITY (checked in validators_test.go):
// nil operand -> shape / dimension mismatch -> numeric (NaN/Inf, singular, asymmetry).

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// (NewDense, NewVector) or that a data slice does not match the requested shape.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside its valid range.
	// Vector.At/Set: [0, n). Vector.At1/Set1 and Dense.At/Set: [1, n].
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add of different shapes, or Mul where lhs.Cols != rhs.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It wraps ErrDimensionMismatch so shape checks can match either sentinel.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNilMatrix indicates that a nil *Dense or *Vector was used as an operand.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrDecompositionFailed indicates that the SVD behind PseudoInverse did not converge.
	ErrDecompositionFailed = errors.New("matrix: decomposition failed")

	// ErrSingular is returned when elimination finds no pivot above the
	// configured threshold. Shared with linsys through internal/elim.
	ErrSingular = elim.ErrSingular

	// ErrNaNInf signals a NaN or ±Inf entry reaching an elimination kernel
	// (Determinant, Inverse, and the linsys direct solver).
	ErrNaNInf = elim.ErrNaNInf
)
