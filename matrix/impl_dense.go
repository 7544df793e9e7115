// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe one-based accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer: one contiguous slice plus a
//     row stride, no per-row allocations and no pointer graph.
//   - Index with mathematical one-based coordinates: At/Set take (i, j) with
//     i ∈ [1, Rows()], j ∈ [1, Cols()]; the flat offset is (i-1)*cols + (j-1).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep value semantics: Clone/CopyFrom always deep-copy.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of rows*cols.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix from row-major data (copied).
// Errors: ErrInvalidDimensions on non-positive shape or len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxFrom, len(data), rows*cols, ErrInvalidDimensions)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks one-based (row, col) and returns the flat offset.
// The check happens before any slice access.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 1 || row > m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 1 || col > m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return (row-1)*m.c + (col - 1), nil
}

// At returns the element at one-based (row, col).
// Errors: ErrOutOfRange when row ∉ [1,Rows()] or col ∉ [1,Cols()].
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v at one-based (row, col).
// Errors: ErrOutOfRange when row ∉ [1,Rows()] or col ∉ [1,Cols()].
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// CopyFrom assigns src into m. When shapes differ m takes src's shape and
// gets a fresh buffer; otherwise the existing buffer is overwritten.
// Errors: ErrNilMatrix when src is nil.
// Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return matrixErrorf(opCopy, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if m.r != src.r || m.c != src.c {
		m.r, m.c = src.r, src.c
		m.data = make([]float64, len(src.data))
	}
	copy(m.data, src.data)

	return nil
}

// Data returns a row-major copy of the elements.
func (m *Dense) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of one-based row i as a Vector.
// Errors: ErrOutOfRange.
func (m *Dense) Row(i int) (*Vector, error) {
	if i < 1 || i > m.r {
		return nil, denseErrorf("Row", i, 1, ErrOutOfRange)
	}
	buf := make([]float64, m.c)
	copy(buf, m.data[(i-1)*m.c:i*m.c])

	return &Vector{data: buf}, nil
}

// Col returns a copy of one-based column j as a Vector.
// Errors: ErrOutOfRange.
func (m *Dense) Col(j int) (*Vector, error) {
	if j < 1 || j > m.c {
		return nil, denseErrorf("Col", 1, j, ErrOutOfRange)
	}
	buf := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		buf[i] = m.data[i*m.c+j-1]
	}

	return &Vector{data: buf}, nil
}

// String implements fmt.Stringer, one bracketed line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
