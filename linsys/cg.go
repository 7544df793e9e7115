// SPDX-License-Identifier: MIT

// Package linsys - iterative solver: Conjugate Gradient.
//
// CG assumes A is symmetric positive-definite. It does not verify this unless
// WithSymmetryCheck is given, and definiteness is never checked: on an
// indefinite A the iteration may stall or produce NaN, which SolveDetailed
// reports as Converged == false.

package linsys

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/linsys/matrix"
)

const opCG = "PosSymLinSystem"

// Result is the outcome of a Conjugate Gradient run.
type Result struct {
	// X is the final iterate: the solution when Converged, otherwise the best
	// estimate available when the iteration cap was reached.
	X *matrix.Vector
	// Iterations is the number of CG steps performed.
	Iterations int
	// Residual is ‖b - A·x‖₂ as tracked by the recurrence, not recomputed.
	Residual float64
	// Converged reports Residual < tolerance.
	Converged bool
}

// PosSymLinSystem is A·x = b for symmetric positive-definite A, solved by
// Conjugate Gradient. It owns deep copies of A and b.
type PosSymLinSystem struct {
	n   int
	a   *matrix.Dense
	b   *matrix.Vector
	cfg config
}

var _ Solver = (*PosSymLinSystem)(nil)

// NewPosSymLinSystem validates shapes and copies A and b.
// With WithSymmetryCheck, an asymmetric A fails with matrix.ErrAsymmetry.
// Errors: ErrInvalidArgument (joined with the matrix cause), matrix.ErrAsymmetry.
func NewPosSymLinSystem(a *matrix.Dense, b *matrix.Vector, opts ...Option) (*PosSymLinSystem, error) {
	if err := validateSystem(opCG, a, b); err != nil {
		return nil, err
	}
	cfg := gatherConfig(opts...)
	if cfg.checkSymmetry {
		if err := matrix.ValidateSymmetric(a, cfg.symEps); err != nil {
			return nil, fmt.Errorf("%s: %w", opCG, err)
		}
	}

	return &PosSymLinSystem{n: b.Len(), a: a.Clone(), b: b.Clone(), cfg: cfg}, nil
}

// Size returns n, the number of unknowns.
func (s *PosSymLinSystem) Size() int { return s.n }

// MaxIterations returns the effective iteration cap.
func (s *PosSymLinSystem) MaxIterations() int {
	if s.cfg.maxIter > 0 {
		return s.cfg.maxIter
	}

	return min(s.n, DefaultIterationCap)
}

// Solve runs CG and returns the final iterate. Reaching the iteration cap is
// not an error; use SolveDetailed to tell convergence apart from exhaustion.
func (s *PosSymLinSystem) Solve() (*matrix.Vector, error) {
	res, err := s.SolveDetailed()
	if err != nil {
		return nil, err
	}

	return res.X, nil
}

// SolveDetailed runs Conjugate Gradient from x = 0.
//
// Implementation:
//   - Stage 1: r = b, p = r, rsOld = rᵀr; a zero right-hand side returns x = 0.
//   - Stage 2: per step: Ap = A·p; α = rsOld/(pᵀAp); x += α·p; r -= α·Ap;
//     rsNew = rᵀr; stop when √rsNew < tol; p = r + (rsNew/rsOld)·p.
//   - Stage 3: stop at the iteration cap with the current x.
//
// pᵀAp == 0 is not guarded: the resulting NaN/Inf propagates into X and the
// run reports Converged == false.
// Complexity: Time O(k·n²) for k iterations, Space O(n²) for the working copy of A.
func (s *PosSymLinSystem) SolveDetailed() (Result, error) {
	n := s.n
	a := s.a.Data() // row-major n×n
	x := make([]float64, n)
	r := s.b.Data()
	p := make([]float64, n)
	copy(p, r)
	ap := make([]float64, n)

	tol := s.cfg.tol
	maxIter := s.MaxIterations()
	log := s.cfg.logger.With(slog.String("solver", opCG), slog.Int("n", n))

	var (
		i, it        int
		alpha, beta  float64
		rsOld, rsNew float64
		residual     float64
		converged    bool
	)
	rsOld = vek.Dot(r, r)
	residual = math.Sqrt(rsOld)
	converged = residual < tol // b ≈ 0: x = 0 already solves it

	for it = 0; !converged && it < maxIter; it++ {
		for i = 0; i < n; i++ {
			ap[i] = vek.Dot(a[i*n:(i+1)*n], p)
		}
		alpha = rsOld / vek.Dot(p, ap)
		for i = 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rsNew = vek.Dot(r, r)
		residual = math.Sqrt(rsNew)
		log.Debug("cg iteration", slog.Int("iter", it+1), slog.Float64("residual", residual))

		if residual < tol {
			converged = true
			it++

			break
		}
		beta = rsNew / rsOld
		for i = 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
		rsOld = rsNew
	}

	if !converged {
		log.Warn("cg reached iteration cap without converging",
			slog.Int("iterations", it),
			slog.Float64("residual", residual),
			slog.Float64("tolerance", tol))
	}

	xv, err := matrix.NewVectorFrom(x...)
	if err != nil {
		return Result{}, fmt.Errorf("%s.SolveDetailed: %w", opCG, err)
	}

	return Result{X: xv, Iterations: it, Residual: residual, Converged: converged}, nil
}
