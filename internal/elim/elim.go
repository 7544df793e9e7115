// SPDX-License-Identifier: MIT

// Package elim holds the partial-pivoting Gaussian elimination kernels shared
// by matrix (Determinant, Inverse) and linsys (LinearSystem.Solve).
//
// All kernels operate in place on flat row-major buffers:
//   - a is an n×n coefficient block with stride n (offset = i*n + j).
//   - rhs is an n×m right-hand side block with stride m; m == 0 means "no rhs".
//
// Indices here are zero-based; the public packages translate their own
// conventions before calling in.
package elim

import (
	"errors"
	"math"
)

// ErrSingular is returned when no admissible pivot exists in a column.
// matrix.ErrSingular aliases this value so errors.Is works across packages.
var ErrSingular = errors.New("matrix: singular matrix")

// ErrNaNInf is returned when an input entry or a pivot is NaN or ±Inf.
// matrix.ErrNaNInf aliases this value.
var ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

// DefaultPivotThreshold is the magnitude below which a pivot is treated as zero.
const DefaultPivotThreshold = 1e-12

// PivotRow scans column k over rows k..n-1 and returns the row holding the
// largest |a(r,k)| together with that magnitude.
// Ties keep the first row met in scan order, so the choice is deterministic.
// NaN entries are never chosen; a column holding only NaN returns (k, NaN).
// Complexity: O(n-k).
func PivotRow(a []float64, n, k int) (int, float64) {
	best, bestAbs := k, math.NaN()
	var v float64
	for r := k; r < n; r++ {
		v = math.Abs(a[r*n+k])
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(bestAbs) || v > bestAbs { // strict: first occurrence wins
			best, bestAbs = r, v
		}
	}

	return best, bestAbs
}

// FirstNonFinite returns the zero-based column of the first NaN or ±Inf in the
// n×n block a, or -1 when a and rhs are all finite. A non-finite rhs entry
// reports column n.
// Complexity: O(n² + len(rhs)).
func FirstNonFinite(a []float64, n int, rhs []float64) int {
	for idx, v := range a[:n*n] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return idx % n
		}
	}
	for _, v := range rhs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return n
		}
	}

	return -1
}

// SwapRows exchanges rows i and j of a flat buffer with the given stride,
// touching only columns [from, stride).
// Complexity: O(stride-from).
func SwapRows(buf []float64, stride, i, j, from int) {
	if i == j {
		return
	}
	ri, rj := buf[i*stride:(i+1)*stride], buf[j*stride:(j+1)*stride]
	for c := from; c < stride; c++ {
		ri[c], rj[c] = rj[c], ri[c]
	}
}

// Forward reduces a to upper-triangular form with partial pivoting, applying
// every row swap and row update to rhs as well.
//
// Implementation:
//   - Stage 0: any NaN or ±Inf in a or rhs aborts with ErrNaNInf.
//   - Stage 1: for k = 0..n-1 pick the pivot row via PivotRow.
//   - Stage 2: a non-finite pivot (overflow during elimination) aborts with
//     ErrNaNInf; a magnitude below threshold, or exactly zero, with ErrSingular.
//   - Stage 3: swap the pivot row into place (a: columns k..n-1; rhs: all columns).
//   - Stage 4: for each row i > k subtract factor = a(i,k)/a(k,k) times the pivot row.
//
// Returns the number of row swaps performed (the determinant sign is (-1)^swaps)
// and the column at which elimination stopped when an error is returned
// (column n when the offending value sits in rhs).
//
// Complexity: Time O(n³ + n²m), Space O(1).
func Forward(a []float64, n int, rhs []float64, m int, threshold float64) (swaps int, col int, err error) {
	var (
		i, j, k, p    int
		pivAbs, pivot float64
		factor        float64
		rowK, rowI    []float64
		rhsK, rhsI    []float64
	)
	hasRHS := m > 0
	if c := FirstNonFinite(a, n, rhs[:n*m]); c >= 0 {
		return 0, c, ErrNaNInf
	}
	for k = 0; k < n; k++ {
		p, pivAbs = PivotRow(a, n, k)
		if math.IsNaN(pivAbs) || math.IsInf(pivAbs, 0) {
			return swaps, k, ErrNaNInf
		}
		if !(pivAbs >= threshold) || pivAbs == 0 {
			return swaps, k, ErrSingular
		}
		if p != k {
			SwapRows(a, n, p, k, k)
			if hasRHS {
				SwapRows(rhs, m, p, k, 0)
			}
			swaps++
		}

		rowK = a[k*n : (k+1)*n]
		pivot = rowK[k]
		if hasRHS {
			rhsK = rhs[k*m : (k+1)*m]
		}
		for i = k + 1; i < n; i++ {
			rowI = a[i*n : (i+1)*n]
			factor = rowI[k] / pivot
			if factor == 0 {
				continue // row already clear in this column
			}
			for j = k; j < n; j++ {
				rowI[j] -= factor * rowK[j]
			}
			if hasRHS {
				rhsI = rhs[i*m : (i+1)*m]
				for j = 0; j < m; j++ {
					rhsI[j] -= factor * rhsK[j]
				}
			}
		}
	}

	return swaps, n, nil
}

// BackSubstitute solves U·X = rhs in place, where U is the upper triangle of a
// left behind by Forward. On return rhs holds X.
//
//	x(k) = (rhs(k) - Σ_{j>k} a(k,j)·x(j)) / a(k,k),  k = n-1..0
//
// Complexity: Time O(n²m), Space O(1).
func BackSubstitute(a []float64, n int, rhs []float64, m int) {
	var (
		k, j, c int
		sum     float64
		rowK    []float64
	)
	for c = 0; c < m; c++ {
		for k = n - 1; k >= 0; k-- {
			rowK = a[k*n : (k+1)*n]
			sum = rhs[k*m+c]
			for j = k + 1; j < n; j++ {
				sum -= rowK[j] * rhs[j*m+c]
			}
			rhs[k*m+c] = sum / rowK[k]
		}
	}
}

// DiagProduct returns the product of the diagonal of the n×n block a.
// Complexity: O(n).
func DiagProduct(a []float64, n int) float64 {
	prod := 1.0
	for k := 0; k < n; k++ {
		prod *= a[k*n+k]
	}

	return prod
}
