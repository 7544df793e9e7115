// Package linsys is a small dense linear-algebra kernel: value-semantic
// vectors and matrices plus two solvers for A·x = b.
//
// What is in the box?
//
//   - matrix/      — Vector (zero- and one-based accessors), Dense (one-based,
//     row-major), Add/Sub/Mul/Scale/Transpose, Determinant, Inverse, PseudoInverse
//   - linsys/      — LinearSystem (Gaussian elimination with partial pivoting) and
//     PosSymLinSystem (Conjugate Gradient for symmetric positive-definite A)
//   - regression/  — least squares through the normal equations: CSV loading,
//     z-scoring, seeded train/test split, RMSE reports
//   - cmd/regress  — command-line front end for regression
//   - examples/    — runnable programs built on the packages above
//
// Guarantees:
//
//   - Every accessor is bounds-checked and returns an error instead of panicking.
//   - Binary operations check shapes before computing.
//   - Solvers own deep copies of their inputs; Solve can be called repeatedly.
//   - Loop orders are fixed, so identical inputs give identical outputs.
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom(2, 2, []float64{2, 0, 0, 3})
//	b, _ := matrix.NewVectorFrom(4, 6)
//	x, _ := linsys.Solve(linsys.DirectElimination, A, b) // [2, 2]
//
//	go get github.com/katalvlaran/linsys
package linsys
