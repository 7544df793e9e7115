// SPDX-License-Identifier: MIT
// Package linsys: functional options shared by both solvers.
//
// Each solver reads only the fields relevant to it; the rest are ignored.
//   - LinearSystem:    WithPivotThreshold, WithLogger.
//   - PosSymLinSystem: WithTolerance, WithMaxIterations, WithSymmetryCheck, WithLogger.

package linsys

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/linsys/internal/elim"
	"github.com/katalvlaran/linsys/matrix"
)

const (
	// DefaultTolerance is the CG stopping threshold on ‖r‖₂.
	DefaultTolerance = 1e-6

	// DefaultIterationCap bounds CG at min(n, DefaultIterationCap) iterations
	// unless WithMaxIterations overrides it.
	DefaultIterationCap = 1000

	// DefaultPivotThreshold is the smallest admissible pivot magnitude for LinearSystem.
	DefaultPivotThreshold = elim.DefaultPivotThreshold
)

const (
	panicToleranceInvalid = "linsys: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "linsys: WithMaxIterations: n must be >= 0"
	panicThresholdInvalid = "linsys: WithPivotThreshold: threshold must be finite, non-negative"
)

// Option configures a solver at construction time.
type Option func(*config)

type config struct {
	tol            float64
	maxIter        int // 0 = min(n, DefaultIterationCap)
	pivotThreshold float64
	checkSymmetry  bool
	symEps         float64
	logger         *slog.Logger
}

func defaultConfig() config {
	return config{
		tol:            DefaultTolerance,
		pivotThreshold: DefaultPivotThreshold,
		symEps:         matrix.DefaultEpsilon,
		logger:         slog.New(slog.DiscardHandler),
	}
}

func gatherConfig(opts ...Option) config {
	c := defaultConfig()
	for _, set := range opts {
		set(&c)
	}

	return c
}

// WithTolerance sets the CG convergence threshold on the residual norm.
// Panics when tol is not a finite positive number.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(c *config) { c.tol = tol }
}

// WithMaxIterations replaces the min(n, 1000) CG iteration cap with n.
// n == 0 restores the default cap. Panics on negative n.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(c *config) { c.maxIter = n }
}

// WithPivotThreshold sets the singularity threshold of LinearSystem.
// Panics when t is negative or non-finite.
func WithPivotThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(c *config) { c.pivotThreshold = t }
}

// WithSymmetryCheck makes NewPosSymLinSystem reject A unless
// |A(i,j) - A(j,i)| ≤ matrix.DefaultEpsilon for all pairs.
func WithSymmetryCheck() Option {
	return func(c *config) { c.checkSymmetry = true }
}

// WithLogger attaches a logger. CG logs every iteration at debug level and a
// warning when the cap is reached without convergence. nil restores the
// discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.logger = l
	}
}
