// SPDX-License-Identifier: MIT
package linsys_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

func mustDense(tb testing.TB, r, c int, vals ...float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

func mustVector(tb testing.TB, vals ...float64) *matrix.Vector {
	tb.Helper()
	v, err := matrix.NewVectorFrom(vals...)
	require.NoError(tb, err)

	return v
}

// randomSPD returns A = MᵀM + n·I, which is symmetric positive-definite and
// well conditioned, plus a random right-hand side.
func randomSPD(tb testing.TB, n int, seed int64) (*matrix.Dense, *matrix.Vector) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}
	m := mustDense(tb, n, n, vals...)
	a, err := matrix.Gram(m)
	require.NoError(tb, err)
	for i := 1; i <= n; i++ {
		d, _ := a.At(i, i)
		require.NoError(tb, a.Set(i, i, d+float64(n)))
	}

	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()*10 - 5
	}

	return a, mustVector(tb, b...)
}

// residualNorm returns ‖A·x − b‖₂.
func residualNorm(tb testing.TB, a *matrix.Dense, x, b *matrix.Vector) float64 {
	tb.Helper()
	ax, err := a.MulVec(x)
	require.NoError(tb, err)
	r, err := ax.Sub(b)
	require.NoError(tb, err)

	return r.Norm()
}
