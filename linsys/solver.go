// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linsys/matrix"
)

// Solver is the common surface of LinearSystem and PosSymLinSystem.
type Solver interface {
	// Size returns the number of unknowns.
	Size() int
	// Solve returns x with A·x = b, computed from the solver's own copies.
	Solve() (*matrix.Vector, error)
}

// Method selects a solver implementation.
type Method int

const (
	// DirectElimination is Gaussian elimination with partial pivoting (LinearSystem).
	DirectElimination Method = iota
	// ConjugateGradient is the iterative SPD solver (PosSymLinSystem).
	ConjugateGradient
)

var methodNames = map[Method]string{
	DirectElimination: "direct",
	ConjugateGradient: "cg",
}

// String returns the short name accepted by ParseMethod.
func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}

	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod maps a case-insensitive name to a Method.
// Accepted: "direct", "gauss", "cg", "conjugate-gradient".
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "direct", "gauss":
		return DirectElimination, nil
	case "cg", "conjugate-gradient":
		return ConjugateGradient, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// New constructs the solver selected by method.
// Errors: ErrUnknownMethod, plus the constructor errors of the chosen solver.
func New(method Method, a *matrix.Dense, b *matrix.Vector, opts ...Option) (Solver, error) {
	var (
		s   Solver
		err error
	)
	switch method {
	case DirectElimination:
		var ls *LinearSystem
		ls, err = NewLinearSystem(a, b, opts...)
		s = ls
	case ConjugateGradient:
		var ps *PosSymLinSystem
		ps, err = NewPosSymLinSystem(a, b, opts...)
		s = ps
	default:
		return nil, fmt.Errorf("%v: %w", method, ErrUnknownMethod)
	}
	if err != nil {
		return nil, err // never a typed-nil Solver
	}

	return s, nil
}

// Solve is New followed by Solve.
func Solve(method Method, a *matrix.Dense, b *matrix.Vector, opts ...Option) (*matrix.Vector, error) {
	s, err := New(method, a, b, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve()
}
