package su2

import (
	"errors"
	"math/cmplx"
)

// DetTol is the magnitude below which a determinant is treated as zero.
// Project refuses to normalize such a matrix: a near-singular link can
// only arise from a programming defect upstream, not from valid data.
const DetTol = 1e-12

// ErrSingularLink indicates an attempt to project a (numerically)
// singular matrix onto SU(2).
var ErrSingularLink = errors.New("su2: cannot project near-singular matrix onto SU(2)")

// Matrix is a 2×2 complex matrix, the storage type of one link variable.
// A Matrix is a plain value: assignment copies, operations return new
// values, and the zero value is the zero matrix (not a group element).
type Matrix [2][2]complex128

// Identity returns the SU(2) identity element.
func Identity() Matrix {
	return Matrix{{1, 0}, {0, 1}}
}

// Mul returns the matrix product m·b.
func (m Matrix) Mul(b Matrix) Matrix {
	return Matrix{
		{
			m[0][0]*b[0][0] + m[0][1]*b[1][0],
			m[0][0]*b[0][1] + m[0][1]*b[1][1],
		},
		{
			m[1][0]*b[0][0] + m[1][1]*b[1][0],
			m[1][0]*b[0][1] + m[1][1]*b[1][1],
		},
	}
}

// Dagger returns the conjugate transpose m†. For a group element this is
// the inverse.
func (m Matrix) Dagger() Matrix {
	return Matrix{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// Add returns the elementwise sum m+b. The result is generally not a
// group element; use Project before storing it as a link.
func (m Matrix) Add(b Matrix) Matrix {
	return Matrix{
		{m[0][0] + b[0][0], m[0][1] + b[0][1]},
		{m[1][0] + b[1][0], m[1][1] + b[1][1]},
	}
}

// Sub returns the elementwise difference m−b.
func (m Matrix) Sub(b Matrix) Matrix {
	return Matrix{
		{m[0][0] - b[0][0], m[0][1] - b[0][1]},
		{m[1][0] - b[1][0], m[1][1] - b[1][1]},
	}
}

// Scale returns s·m.
func (m Matrix) Scale(s complex128) Matrix {
	return Matrix{
		{s * m[0][0], s * m[0][1]},
		{s * m[1][0], s * m[1][1]},
	}
}

// Det returns the determinant of m.
func (m Matrix) Det() complex128 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// TraceReal returns Re Tr m, the only trace the observables need.
func (m Matrix) TraceReal() float64 {
	return real(m[0][0] + m[1][1])
}

// Project maps m onto the nearest SU(2) element by scaling with 1/√det,
// which restores unit determinant while preserving the unitary direction
// of a convex blend of group elements. A determinant of magnitude below
// DetTol returns ErrSingularLink.
func (m Matrix) Project() (Matrix, error) {
	det := m.Det()
	if cmplx.Abs(det) < DetTol {
		return Matrix{}, ErrSingularLink
	}
	return m.Scale(1 / cmplx.Sqrt(det)), nil
}

// UnitarityError returns the largest entrywise deviation of m†·m from
// the identity, a cheap membership check for tests and invariant guards.
func (m Matrix) UnitarityError() float64 {
	p := m.Dagger().Mul(m)
	e := cmplx.Abs(p[0][0] - 1)
	if d := cmplx.Abs(p[0][1]); d > e {
		e = d
	}
	if d := cmplx.Abs(p[1][0]); d > e {
		e = d
	}
	if d := cmplx.Abs(p[1][1] - 1); d > e {
		e = d
	}
	return e
}

// IsSpecialUnitary reports whether m is unitary with unit determinant to
// within tol.
func (m Matrix) IsSpecialUnitary(tol float64) bool {
	return m.UnitarityError() < tol && cmplx.Abs(m.Det()-1) < tol
}
