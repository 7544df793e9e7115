// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linsys/linsys"
	"github.com/katalvlaran/linsys/matrix"
)

// NormalEquations returns A = XᵀX and b = Xᵀy.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (y.Len() != X.Rows()).
// Complexity: O(r*c²).
func NormalEquations(x *matrix.Dense, y *matrix.Vector) (*matrix.Dense, *matrix.Vector, error) {
	a, err := matrix.Gram(x)
	if err != nil {
		return nil, nil, fmt.Errorf("NormalEquations: %w", err)
	}
	b, err := matrix.TMulVec(x, y)
	if err != nil {
		return nil, nil, fmt.Errorf("NormalEquations: %w", err)
	}

	return a, b, nil
}

// FitResult is a solved least-squares model.
type FitResult struct {
	Coefficients *matrix.Vector
	Method       linsys.Method
	// Iterations, Residual and Converged come from CG; a direct solve reports
	// zero iterations and Converged == true.
	Iterations int
	Residual   float64
	Converged  bool
}

// Fit solves XᵀX·c = Xᵀy with the chosen method. opts are passed to the solver.
// Errors: those of NormalEquations and of the linsys constructor / Solve.
func Fit(x *matrix.Dense, y *matrix.Vector, method linsys.Method, opts ...linsys.Option) (*FitResult, error) {
	a, b, err := NormalEquations(x, y)
	if err != nil {
		return nil, err
	}

	switch method {
	case linsys.ConjugateGradient:
		sys, err := linsys.NewPosSymLinSystem(a, b, opts...)
		if err != nil {
			return nil, err
		}
		res, err := sys.SolveDetailed()
		if err != nil {
			return nil, err
		}

		return &FitResult{
			Coefficients: res.X,
			Method:       method,
			Iterations:   res.Iterations,
			Residual:     res.Residual,
			Converged:    res.Converged,
		}, nil
	default:
		coef, err := linsys.Solve(method, a, b, opts...)
		if err != nil {
			return nil, err
		}

		return &FitResult{Coefficients: coef, Method: method, Converged: true}, nil
	}
}

// Predict returns X·coef.
func Predict(x *matrix.Dense, coef *matrix.Vector) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	return x.MulVec(coef)
}

// RMSE returns sqrt(mean((X·coef - y)²)).
// Errors: matrix.ErrDimensionMismatch on incompatible shapes.
func RMSE(x *matrix.Dense, y, coef *matrix.Vector) (float64, error) {
	pred, err := Predict(x, coef)
	if err != nil {
		return 0, err
	}
	diff, err := pred.Sub(y)
	if err != nil {
		return 0, fmt.Errorf("RMSE: %w", err)
	}

	return diff.Norm() / math.Sqrt(float64(diff.Len())), nil
}
