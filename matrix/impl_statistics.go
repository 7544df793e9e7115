// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics behind feature standardization
//     (z-scoring) of a design matrix, plus the broadcast kernels they apply.
//
// Exposed API:
//   - ColumnMeans(X)              -> means            // Σ_i X(i,j) / r
//   - ColumnStds(X, means)        -> stds             // population std per column
//   - CenterColumns(X)            -> (Xc, means)      // subtract per-column mean
//   - StandardizeColumns(X, μ, σ) -> Z                // (X - μ) / σ, σ = 0 → centered only
//
// Determinism & Performance:
//   - Fixed i→j traversal over the row-major buffer; no At/Set in hot loops.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumnMeans        = "ColumnMeans"
	opColumnStds         = "ColumnStds"
	opCenterColumns      = "CenterColumns"
	opStandardizeColumns = "StandardizeColumns"
)

// ColumnMeans returns Σ_i X(i,j) / r for every column j.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func ColumnMeans(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	r, c := X.r, X.c
	means := make([]float64, c)
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// ColumnStds returns the population standard deviation of each column,
// sqrt(Σ_i (X(i,j) - means[j])² / r), given precomputed means.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(means) != Cols()).
// Complexity: O(r*c).
func ColumnStds(X *Dense, means []float64) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}
	if len(means) != X.c {
		return nil, matrixErrorf(opColumnStds, ErrDimensionMismatch)
	}

	r, c := X.r, X.c
	stds := make([]float64, c)
	var (
		i, j int
		d    float64
	)
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			d = X.data[base+j] - means[j]
			stds[j] += d * d
		}
	}
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] / float64(r))
	}

	return stds, nil
}

// CenterColumns subtracts the per-column mean from every element.
// Returns the centered copy and the means, so callers can un-center later.
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func CenterColumns(X *Dense) (*Dense, []float64, error) {
	means, err := ColumnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	Xc, err := StandardizeColumns(X, means, nil)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// StandardizeColumns computes out(i,j) = (X(i,j) - means[j]) / stds[j].
//
// Behavior highlights:
//   - stds == nil centers without scaling.
//   - stds[j] == 0 (a constant column) leaves column j centered, not divided.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(means) or len(stds) != Cols()).
// Complexity: Time O(r*c), Space O(r*c).
func StandardizeColumns(X *Dense, means, stds []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opStandardizeColumns, err)
	}
	r, c := X.r, X.c
	if len(means) != c || (stds != nil && len(stds) != c) {
		return nil, matrixErrorf(opStandardizeColumns, ErrDimensionMismatch)
	}

	scale := make([]float64, c)
	for j := range scale {
		scale[j] = 1
		if stds != nil && stds[j] != 0 {
			scale[j] = 1 / stds[j]
		}
	}

	out := &Dense{r: r, c: c, data: make([]float64, len(X.data))}
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = (X.data[base+j] - means[j]) * scale[j]
		}
	}

	return out, nil
}
