// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/stretchr/testify/require"
)

// TestColumnStatistics checks means and population standard deviations.
func TestColumnStatistics(t *testing.T) {
	X := mustDense(t, 4, 3,
		1, 10, 7,
		2, 20, 7,
		3, 30, 7,
		4, 40, 7)

	means, err := matrix.ColumnMeans(X)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2.5, 25, 7}, means, 1e-12)

	stds, err := matrix.ColumnStds(X, means)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{math.Sqrt(1.25), math.Sqrt(125), 0}, stds, 1e-12)

	_, err = matrix.ColumnStds(X, means[:2])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ColumnMeans(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCenterAndStandardize checks zero column means and unit variance.
func TestCenterAndStandardize(t *testing.T) {
	X := randomDense(t, 9, 3, 77)

	Xc, means, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	got, err := matrix.ColumnMeans(Xc)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0, 0}, got, 1e-12)

	stds, err := matrix.ColumnStds(X, means)
	require.NoError(t, err)
	Z, err := matrix.StandardizeColumns(X, means, stds)
	require.NoError(t, err)
	zm, _ := matrix.ColumnMeans(Z)
	zs, err := matrix.ColumnStds(Z, zm)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1}, zs, 1e-12)
}

// TestStandardizeConstantColumn leaves a zero-variance column centered.
func TestStandardizeConstantColumn(t *testing.T) {
	X := mustDense(t, 2, 2, 1, 5, 3, 5)
	Z, err := matrix.StandardizeColumns(X, []float64{2, 5}, []float64{1, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 0, 1, 0}, Z.Data())

	_, err = matrix.StandardizeColumns(X, []float64{2}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
