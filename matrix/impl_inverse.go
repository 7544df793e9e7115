// SPDX-License-Identifier: MIT

// Package matrix - square-only kernels built on partial-pivoting elimination.
//
// Determinant and Inverse share the elimination kernels in internal/elim with
// the direct solver in linsys, so the three agree on pivot choice and on what
// counts as singular.
//
// Determinism:
//   - Pivot selection is a strict maximum with first-occurrence tie-break.
//   - Loop orders are fixed; identical inputs give identical outputs.

package matrix

import (
	"errors"

	"github.com/katalvlaran/linsys/internal/elim"
)

// Determinant returns det(m) for a square matrix.
//
// Implementation:
//   - Stage 1: copy the buffer (m is never mutated).
//   - Stage 2: forward elimination with partial pivoting, counting row swaps.
//   - Stage 3: det = (-1)^swaps · Π diag(U).
//
// A column with no non-zero pivot candidate yields det = 0 with a nil error:
// a singular matrix has a well-defined determinant.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNaNInf (non-finite entry or overflow).
// Complexity: Time O(n³), Space O(n²).
func (m *Dense) Determinant() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := m.r
	work := m.Data()
	swaps, col, err := elim.Forward(work, n, nil, 0, 0) // threshold 0: only exact zeros stop
	if errors.Is(err, elim.ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, matrixErrorf(opDeterminant, denseErrorf("pivot", col+1, col+1, err))
	}

	det := elim.DiagProduct(work, n)
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// Inverse returns m⁻¹ for a square, non-singular matrix.
//
// Implementation:
//   - Stage 1: copy m into a working buffer; seed the right-hand side with I.
//   - Stage 2: forward elimination with partial pivoting on [A | I].
//   - Stage 3: back substitution for all n columns at once; the rhs becomes A⁻¹.
//
// Options: WithPivotThreshold (default DefaultPivotThreshold).
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular (max pivot below threshold),
// ErrNaNInf (non-finite entry or overflow).
// Complexity: Time O(n³), Space O(n²).
func (m *Dense) Inverse(opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	n := m.r
	work := m.Data()
	inv := make([]float64, n*n)
	for i := 0; i < n; i++ {
		inv[i*n+i] = 1
	}

	if _, col, err := elim.Forward(work, n, inv, n, o.pivotThreshold); err != nil {
		return nil, matrixErrorf(opInverse, denseErrorf("pivot", col+1, col+1, err))
	}
	elim.BackSubstitute(work, n, inv, n)

	return &Dense{r: n, c: n, data: inv}, nil
}
