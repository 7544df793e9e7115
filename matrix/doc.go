// Package matrix offers value-semantic dense containers for real linear algebra.
//
// The matrix package provides:
//
//   - Vector: a fixed-length dense vector with two accessor contracts over the
//     same storage, zero-based At/Set and one-based At1/Set1.
//   - Dense: a fixed-shape row-major matrix in one contiguous buffer, indexed
//     with one-based (row, col) coordinates like the textbook notation.
//   - Arithmetic: Add, Sub, Mul, Scale, Transpose, MulVec, Gram, TMulVec.
//   - Square-only kernels: Determinant and Inverse via partial-pivoting
//     elimination, and PseudoInverse via a thin SVD.
//   - Column statistics: ColumnMeans, ColumnStds, CenterColumns and
//     StandardizeColumns for z-scoring design matrices.
//
// Every copy is deep: Clone and CopyFrom never share buffers, and no
// arithmetic mutates its operands. Index and shape violations are reported
// as wrapped sentinels (ErrOutOfRange, ErrDimensionMismatch, ...) matched
// with errors.Is; nothing in this package panics on user input.
//
// See the examples in this package and in linsys for usage patterns.
package matrix
