// SPDX-License-Identifier: MIT
package linsys_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsys/linsys"
	"github.com/katalvlaran/linsys/matrix"
)

// TestConstructorShapeErrors covers nil, non-square and mismatched input for
// both solvers; each error matches ErrInvalidArgument and ErrDimensionMismatch.
func TestConstructorShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		a    *matrix.Dense
		b    *matrix.Vector
		want error
	}{
		{"non-square", mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6), mustVector(t, 1, 2), matrix.ErrDimensionMismatch},
		{"short b", mustDense(t, 2, 2, 1, 0, 0, 1), mustVector(t, 1), matrix.ErrDimensionMismatch},
		{"long b", mustDense(t, 2, 2, 1, 0, 0, 1), mustVector(t, 1, 2, 3), matrix.ErrDimensionMismatch},
		{"nil A", nil, mustVector(t, 1), matrix.ErrNilMatrix},
		{"nil b", mustDense(t, 1, 1, 1), nil, matrix.ErrNilMatrix},
	}
	for _, m := range []linsys.Method{linsys.DirectElimination, linsys.ConjugateGradient} {
		for _, tc := range cases {
			t.Run(m.String()+"/"+tc.name, func(t *testing.T) {
				s, err := linsys.New(m, tc.a, tc.b)
				require.Nil(t, s)
				require.ErrorIs(t, err, linsys.ErrInvalidArgument)
				require.ErrorIs(t, err, tc.want)
			})
		}
	}
}

// TestParseMethod maps names both ways.
func TestParseMethod(t *testing.T) {
	for in, want := range map[string]linsys.Method{
		"direct":             linsys.DirectElimination,
		"Gauss":              linsys.DirectElimination,
		" cg ":               linsys.ConjugateGradient,
		"conjugate-gradient": linsys.ConjugateGradient,
	} {
		got, err := linsys.ParseMethod(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := linsys.ParseMethod("lu")
	require.ErrorIs(t, err, linsys.ErrUnknownMethod)

	require.Equal(t, "direct", linsys.DirectElimination.String())
	require.Equal(t, "cg", linsys.ConjugateGradient.String())
	require.Equal(t, "Method(9)", linsys.Method(9).String())

	_, err = linsys.New(linsys.Method(9), mustDense(t, 1, 1, 1), mustVector(t, 1))
	require.ErrorIs(t, err, linsys.ErrUnknownMethod)
}

// TestSolverInterface runs both methods through the interface on one SPD system.
func TestSolverInterface(t *testing.T) {
	a, b := randomSPD(t, 6, 99)
	var xs [][]float64
	for _, m := range []linsys.Method{linsys.DirectElimination, linsys.ConjugateGradient} {
		s, err := linsys.New(m, a, b, linsys.WithMaxIterations(50), linsys.WithTolerance(1e-10))
		require.NoError(t, err)
		require.Equal(t, 6, s.Size())
		x, err := s.Solve()
		require.NoError(t, err)
		require.Less(t, residualNorm(t, a, x, b), 1e-8)
		xs = append(xs, x.Data())
	}
	require.InDeltaSlice(t, xs[0], xs[1], 1e-6)
}

// TestOptionsPanic checks that nonsensical option values fail fast.
func TestOptionsPanic(t *testing.T) {
	require.Panics(t, func() { linsys.WithTolerance(0) })
	require.Panics(t, func() { linsys.WithTolerance(math.NaN()) })
	require.Panics(t, func() { linsys.WithMaxIterations(-1) })
	require.Panics(t, func() { linsys.WithPivotThreshold(-1) })
	require.NotPanics(t, func() { linsys.WithLogger(nil) })
}
