// SPDX-License-Identifier: MIT

// Package matrix - Moore–Penrose pseudo-inverse.
//
// The thin SVD comes from gonum.org/v1/gonum/mat; this file only assembles
// A⁺ = V·Σ⁺·Uᵀ. The SVD itself is not part of this package's surface.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// PseudoInverse returns the Moore–Penrose pseudo-inverse A⁺ (Cols×Rows).
// Unlike Inverse it accepts any shape and rank-deficient input.
//
// Implementation:
//   - Stage 1: thin SVD A = U·Σ·Vᵀ via gonum.
//   - Stage 2: σ_l ≤ rcond·σ_max is treated as zero (Σ⁺ keeps 1/σ_l otherwise).
//   - Stage 3: A⁺(i,j) = Σ_l V(i,l)·(1/σ_l)·U(j,l).
//
// Options: WithRcond (default DefaultRcond).
// Errors: ErrNilMatrix, ErrDecompositionFailed.
// Complexity: Time O(min(r,c)·r·c), Space O(r*c).
func (m *Dense) PseudoInverse(opts ...Option) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	o := gatherOptions(opts...)

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(m.r, m.c, m.Data()), mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrDecompositionFailed)
	}
	sv := svd.Values(nil) // descending, len == min(r,c)
	var u, v mat.Dense
	svd.UTo(&u) // r×k
	svd.VTo(&v) // c×k

	cutoff := o.rcond * sv[0]
	res := &Dense{r: m.c, c: m.r, data: make([]float64, m.r*m.c)}

	var (
		i, j, l int
		inv     float64
		row     []float64
	)
	for l = 0; l < len(sv); l++ {
		if sv[l] <= cutoff {
			break // descending order: the rest are below the cutoff too
		}
		inv = 1 / sv[l]
		for i = 0; i < m.c; i++ {
			row = res.data[i*m.r : (i+1)*m.r]
			vil := v.At(i, l) * inv
			for j = 0; j < m.r; j++ {
				row[j] += vil * u.At(j, l)
			}
		}
	}

	return res, nil
}
