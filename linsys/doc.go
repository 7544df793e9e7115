// SPDX-License-Identifier: MIT

// Package linsys solves square linear systems A·x = b over matrix.Dense and
// matrix.Vector.
//
// Two solvers are provided:
//
//   - LinearSystem — Gaussian elimination with partial pivoting. Works for any
//     non-singular A; fails with ErrSingular when the largest candidate pivot
//     in some column is below the pivot threshold (default 1e-12).
//   - PosSymLinSystem — Conjugate Gradient for symmetric positive-definite A.
//     Starts from x = 0 and stops when ‖r‖₂ < tolerance (default 1e-6) or
//     after min(n, 1000) iterations. SolveDetailed reports whether the
//     tolerance was actually met.
//
// Both constructors validate shapes (A square, A.Rows() == b.Len()) and take
// deep copies of A and b, so later edits to the caller's values never leak
// into a solver. Solve is a pure function of those copies and may be called
// any number of times.
//
// Callers that pick the method at run time use the Solver interface together
// with New / Solve and a Method value (see ParseMethod).
//
// Example:
//
//	A, _ := matrix.NewDenseFrom(2, 2, []float64{3, 1, 1, 2})
//	b, _ := matrix.NewVectorFrom(5, 5)
//	x, err := linsys.Solve(linsys.ConjugateGradient, A, b)
//	// x ≈ [1, 2]
package linsys
