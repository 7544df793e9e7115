// SPDX-License-Identifier: MIT
// Package linsys: sentinel errors.
//
// Constructor shape failures wrap BOTH ErrInvalidArgument and the matrix
// sentinel describing the cause, so either can be matched with errors.Is.

package linsys

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

var (
	// ErrInvalidArgument marks a system whose inputs cannot describe A·x = b:
	// nil operands, non-square A, or b.Len() != A.Rows().
	ErrInvalidArgument = errors.New("linsys: invalid argument")

	// ErrUnknownMethod is returned by New and ParseMethod for an unrecognized Method.
	ErrUnknownMethod = errors.New("linsys: unknown solver method")

	// ErrSingular aliases matrix.ErrSingular: no pivot above the threshold.
	ErrSingular = matrix.ErrSingular

	// ErrNaNInf aliases matrix.ErrNaNInf: A or b holds NaN or ±Inf, or
	// elimination overflowed.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrDimensionMismatch aliases matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// argErrorf joins ErrInvalidArgument with a more specific cause.
func argErrorf(op string, cause error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w: %w", op, fmt.Sprintf(format, args...), ErrInvalidArgument, cause)
}

// validateSystem enforces the shape contract shared by every solver.
func validateSystem(op string, a *matrix.Dense, b *matrix.Vector) error {
	if a == nil || b == nil {
		return argErrorf(op, matrix.ErrNilMatrix, "nil operand")
	}
	rows, cols := a.Shape()
	if rows != cols {
		return argErrorf(op, matrix.ErrNonSquare, "A is %dx%d", rows, cols)
	}
	if b.Len() != rows {
		return argErrorf(op, matrix.ErrDimensionMismatch, "len(b)=%d, A has %d rows", b.Len(), rows)
	}

	return nil
}
