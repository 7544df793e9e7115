// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// square-only kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by IsSymmetric.
	DefaultEpsilon = 1e-9

	// DefaultPivotThreshold is the pivot magnitude below which Inverse reports
	// ErrSingular. It matches the direct solver in linsys.
	DefaultPivotThreshold = 1e-12

	// DefaultRcond is the relative cutoff for PseudoInverse: singular values
	// σ ≤ DefaultRcond·σ_max are treated as zero.
	DefaultRcond = 1e-13
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicThresholdInvalid = "matrix: WithPivotThreshold: threshold must be finite, non-negative"
	panicRcondInvalid     = "matrix: WithRcond: rcond must be finite, in [0, 1)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	pivotThreshold float64 // >= 0; DefaultPivotThreshold
	rcond          float64 // [0,1); DefaultRcond
}

// WithEpsilon sets the absolute tolerance used by symmetry checks.
// Panics when eps is negative or non-finite.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithPivotThreshold sets the magnitude below which a pivot counts as zero
// during Inverse. A threshold of 0 rejects only exact zero pivots.
// Panics when t is negative or non-finite.
// Complexity: O(1).
func WithPivotThreshold(t float64) Option {
	if isNonFinite(t) || t < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.pivotThreshold = t }
}

// WithRcond sets the relative singular-value cutoff used by PseudoInverse.
// Panics when rcond is outside [0, 1) or non-finite.
// Complexity: O(1).
func WithRcond(rcond float64) Option {
	if isNonFinite(rcond) || rcond < 0 || rcond >= 1 {
		panic(panicRcondInvalid)
	}

	return func(o *Options) { o.rcond = rcond }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Stable for a given sequence of opts (last-writer-wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon reports the resolved symmetry tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// PivotThreshold reports the resolved singularity threshold.
func (o Options) PivotThreshold() float64 { return o.pivotThreshold }

// Rcond reports the resolved pseudo-inverse cutoff.
func (o Options) Rcond() float64 { return o.rcond }

// gatherOptions applies user-provided setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		pivotThreshold: DefaultPivotThreshold,
		rcond:          DefaultRcond,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
