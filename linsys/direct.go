// SPDX-License-Identifier: MIT

// Package linsys - direct solver: Gaussian elimination with partial pivoting.
//
// Determinism:
//   - The pivot is the strict maximum |A(i,k)| over rows i ≥ k; ties keep the
//     first row in scan order.
//   - Elimination and back substitution run in fixed loop order.

package linsys

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linsys/internal/elim"
	"github.com/katalvlaran/linsys/matrix"
)

const opDirect = "LinearSystem"

// LinearSystem is A·x = b solved by pivoted elimination.
// It owns deep copies of A and b and is immutable after construction.
type LinearSystem struct {
	n   int
	a   *matrix.Dense
	b   *matrix.Vector
	cfg config
}

var _ Solver = (*LinearSystem)(nil)

// NewLinearSystem validates shapes and copies A and b.
// Errors: ErrInvalidArgument joined with matrix.ErrNilMatrix,
// matrix.ErrNonSquare or matrix.ErrDimensionMismatch.
func NewLinearSystem(a *matrix.Dense, b *matrix.Vector, opts ...Option) (*LinearSystem, error) {
	if err := validateSystem(opDirect, a, b); err != nil {
		return nil, err
	}

	return &LinearSystem{n: b.Len(), a: a.Clone(), b: b.Clone(), cfg: gatherConfig(opts...)}, nil
}

// Size returns n, the number of unknowns.
func (s *LinearSystem) Size() int { return s.n }

// Solve returns x with A·x = b.
//
// Implementation:
//   - Stage 1: copy the stored A and b into working buffers.
//   - Stage 2: forward elimination with partial pivoting; a non-finite entry
//     aborts with ErrNaNInf, a pivot below the threshold with ErrSingular.
//   - Stage 3: back substitution x(k) = (b(k) - Σ_{j>k} A(k,j)·x(j)) / A(k,k).
//
// The stored A and b are untouched, so repeated calls return identical results.
// Errors: ErrSingular, ErrNaNInf.
// Complexity: Time O(n³), Space O(n²).
func (s *LinearSystem) Solve() (*matrix.Vector, error) {
	work := s.a.Data()
	rhs := s.b.Data()

	swaps, col, err := elim.Forward(work, s.n, rhs, 1, s.cfg.pivotThreshold)
	if err != nil {
		s.cfg.logger.Debug("elimination stopped",
			slog.String("solver", opDirect),
			slog.Int("pivot_column", col+1),
			slog.Int("n", s.n))

		if col == s.n {
			return nil, fmt.Errorf("%s.Solve: right-hand side: %w", opDirect, err)
		}

		return nil, fmt.Errorf("%s.Solve: pivot column %d: %w", opDirect, col+1, err)
	}
	elim.BackSubstitute(work, s.n, rhs, 1)

	s.cfg.logger.Debug("direct solve complete", slog.Int("n", s.n), slog.Int("swaps", swaps))

	return matrix.NewVectorFrom(rhs...)
}
