// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
)

// Scaler holds per-column statistics for z-score normalization.
type Scaler struct {
	Mean []float64
	Std  []float64 // population standard deviation; 1 for constant columns
}

// FitScaler computes column means and population standard deviations of X.
// A constant column gets Std = 1, so it is centered but not scaled.
// Complexity: O(r*c).
func FitScaler(x *matrix.Dense) (Scaler, error) {
	mean, err := matrix.ColumnMeans(x)
	if err != nil {
		return Scaler{}, fmt.Errorf("FitScaler: %w", err)
	}
	std, err := matrix.ColumnStds(x, mean)
	if err != nil {
		return Scaler{}, fmt.Errorf("FitScaler: %w", err)
	}
	for j := range std {
		if std[j] == 0 {
			std[j] = 1
		}
	}

	return Scaler{Mean: mean, Std: std}, nil
}

// Apply returns (X - mean) / std column-wise as a fresh matrix.
// Errors: matrix.ErrDimensionMismatch when X has a different column count.
func (s Scaler) Apply(x *matrix.Dense) (*matrix.Dense, error) {
	z, err := matrix.StandardizeColumns(x, s.Mean, s.Std)
	if err != nil {
		return nil, fmt.Errorf("Scaler.Apply: %w", err)
	}

	return z, nil
}

// Standardize fits a Scaler on X and applies it.
func Standardize(x *matrix.Dense) (*matrix.Dense, Scaler, error) {
	s, err := FitScaler(x)
	if err != nil {
		return nil, Scaler{}, err
	}
	z, err := s.Apply(x)
	if err != nil {
		return nil, Scaler{}, err
	}

	return z, s, nil
}

// WithIntercept appends a column of ones to X (rows × (cols+1)).
func WithIntercept(x *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("WithIntercept: %w", err)
	}
	r, c := x.Shape()
	src := x.Data()
	out := make([]float64, 0, r*(c+1))
	for i := 0; i < r; i++ {
		out = append(out, src[i*c:(i+1)*c]...)
		out = append(out, 1)
	}

	return matrix.NewDenseFrom(r, c+1, out)
}
