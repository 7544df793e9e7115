// SPDX-License-Identifier: MIT
// Package matrix_test - arithmetic kernels: Add/Sub/Mul/Scale/Transpose/MulVec.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub checks element-wise sums and differences and operand immutability.
func TestAddSub(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 5, 6, 7, 8)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 8, 10, 12}, sum.Data())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 4, 4, 4}, diff.Data())

	require.Equal(t, []float64{1, 2, 3, 4}, a.Data())

	viaFacade, err := matrix.Sum(a, b)
	require.NoError(t, err)
	require.Equal(t, sum.Data(), viaFacade.Data())
}

// TestMulScenario covers the 2×2 product [[1,2],[3,4]]·[[5,6],[7,8]].
func TestMulScenario(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 5, 6, 7, 8)

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, []float64{19, 22, 43, 50}, p.Data())

	p2, err := matrix.Product(a, b)
	require.NoError(t, err)
	require.Equal(t, p.Data(), p2.Data())
}

// TestMulRectangular multiplies 2×3 by 3×1 and checks the result shape.
func TestMulRectangular(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 0, 2, -1, 3, 1)
	b := mustDense(t, 3, 1, 3, 2, 1)

	p, err := a.Mul(b)
	require.NoError(t, err)
	r, c := p.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)
	require.Equal(t, []float64{5, 4}, p.Data())
}

// TestMulIdentity checks I·A = A·I = A on a random square matrix.
func TestMulIdentity(t *testing.T) {
	a := randomDense(t, 5, 5, 11)
	I, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	left, err := I.Mul(a)
	require.NoError(t, err)
	right, err := a.Mul(I)
	require.NoError(t, err)
	requireDenseInDelta(t, a, left, 0)
	requireDenseInDelta(t, a, right, 0)
}

// TestArithmeticMismatch rejects incompatible shapes.
func TestArithmeticMismatch(t *testing.T) {
	a := mustDense(t, 2, 3)
	b := mustDense(t, 2, 2)

	_, err := a.Add(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Mul(b) // 3 != 2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = a.MulVec(mustVector(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale multiplies every element by a scalar.
func TestScale(t *testing.T) {
	a := mustDense(t, 2, 2, 1, -2, 0, 4)
	require.Equal(t, []float64{-3, 6, 0, -12}, a.Scale(-3).Data())
	require.Equal(t, []float64{1, -2, 0, 4}, a.Data())
}

// TestTranspose swaps the shape and mirrors entries.
func TestTranspose(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	at, err := matrix.T(a)
	require.NoError(t, err)
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())

	got, err := at.At(3, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, got)

	_, err = matrix.T(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulVec computes A·x row by row.
func TestMulVec(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	y, err := a.MulVec(mustVector(t, 1, 0, -1))
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y.Data())
}

// TestGramAndTMulVec checks the normal-equation helpers against Transpose+Mul.
func TestGramAndTMulVec(t *testing.T) {
	x := randomDense(t, 7, 3, 5)
	want, err := x.Transpose().Mul(x)
	require.NoError(t, err)

	g, err := matrix.Gram(x)
	require.NoError(t, err)
	requireDenseInDelta(t, want, g, 1e-12)
	require.True(t, g.IsSymmetric(matrix.WithEpsilon(0)))

	y := mustVector(t, 1, 2, 3, 4, 5, 6, 7)
	wantV, err := x.Transpose().MulVec(y)
	require.NoError(t, err)
	gotV, err := matrix.TMulVec(x, y)
	require.NoError(t, err)
	require.InDeltaSlice(t, wantV.Data(), gotV.Data(), 1e-12)

	_, err = matrix.TMulVec(x, mustVector(t, 1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestIsSymmetric honours the tolerance and rejects non-square input.
func TestIsSymmetric(t *testing.T) {
	s := mustDense(t, 2, 2, 4, 1, 1+1e-12, 3)
	require.True(t, s.IsSymmetric())
	require.False(t, s.IsSymmetric(matrix.WithEpsilon(0)))

	require.False(t, mustDense(t, 2, 3).IsSymmetric())
	require.False(t, mustDense(t, 2, 2, 1, 2, 3, 4).IsSymmetric())
}
