// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical method.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c).
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// NewIdentity returns Iₙ (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// IdentityLike returns I with dimension Rows(m); requires square m.
// Complexity: O(n²).
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// Sum is an alias for a.Add(b). Complexity: O(r*c).
func Sum(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.Add(b)
}

// Product is an alias for a.Mul(b). Complexity: O(r*n*c).
func Product(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return a.Mul(b)
}

// T is an alias for m.Transpose(). Complexity: O(r*c).
func T(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose(), nil
}

// Gram returns mᵀ·m (Cols×Cols), the left-hand side of the normal equations.
// The result is symmetric by construction: only the upper triangle is
// accumulated and then mirrored.
// Complexity: O(r*c²).
func Gram(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	c := m.c
	g := &Dense{r: c, c: c, data: make([]float64, c*c)}
	var i, j, k int
	var row []float64
	for k = 0; k < m.r; k++ {
		row = m.data[k*c : (k+1)*c]
		for i = 0; i < c; i++ {
			for j = i; j < c; j++ {
				g.data[i*c+j] += row[i] * row[j]
			}
		}
	}
	for i = 0; i < c; i++ {
		for j = i + 1; j < c; j++ {
			g.data[j*c+i] = g.data[i*c+j]
		}
	}

	return g, nil
}

// TMulVec returns mᵀ·x without materializing mᵀ, the right-hand side of the
// normal equations.
// Errors: ErrNilMatrix, ErrDimensionMismatch (x.Len() != Rows()).
// Complexity: O(r*c).
func TMulVec(m *Dense, x *Vector) (*Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("TMulVec", err)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, matrixErrorf("TMulVec", err)
	}

	out := make([]float64, m.c)
	var i, j int
	var xi float64
	for i = 0; i < m.r; i++ {
		xi = x.data[i]
		for j = 0; j < m.c; j++ {
			out[j] += m.data[i*m.c+j] * xi
		}
	}

	return &Vector{data: out}, nil
}
