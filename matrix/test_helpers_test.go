// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// tolerance for floating-point comparisons of O(n³) kernels on small inputs.
const tol = 1e-9

// mustDense builds an r×c *Dense from row-major values or fails the test.
func mustDense(tb testing.TB, r, c int, vals ...float64) *matrix.Dense {
	tb.Helper()
	if len(vals) == 0 {
		m, err := matrix.NewDense(r, c)
		require.NoError(tb, err)
		return m
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(tb, err)

	return m
}

// mustVector builds a *Vector from values or fails the test.
func mustVector(tb testing.TB, vals ...float64) *matrix.Vector {
	tb.Helper()
	v, err := matrix.NewVectorFrom(vals...)
	require.NoError(tb, err)

	return v
}

// randomDense fills an r×c matrix with values in [-1, 1) from a fixed seed.
func randomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()*2 - 1
	}

	return mustDense(tb, r, c, vals...)
}

// requireDenseInDelta compares two matrices element-wise within delta.
func requireDenseInDelta(tb testing.TB, want, got *matrix.Dense, delta float64) {
	tb.Helper()
	require.Equal(tb, want.Rows(), got.Rows(), "rows")
	require.Equal(tb, want.Cols(), got.Cols(), "cols")
	require.InDeltaSlice(tb, want.Data(), got.Data(), delta)
}
