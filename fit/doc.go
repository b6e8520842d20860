// Package fit extracts the two physical numbers of the pipeline from
// post-processed observables: the mass gap from the leading GEVP
// eigenvalue sequence and the string tension from averaged Wilson
// loops.
//
// 🚀 What lives here?
//
//	• Mass      — nonlinear least squares of λ₀(t) over a chosen window
//	  to A·cosh(m·(t−N/2)) + C, the periodic two-sided propagator plus a
//	  finite-statistics noise floor. Box constraints keep A, m, C
//	  physical; the standard error of m comes from the Gauss–Newton
//	  covariance s²·(JᵀJ)⁻¹ at the optimum.
//	• Potential — V(R) = ln(W(R,T)/W(R,T+1)) wherever both loop averages
//	  are strictly positive, then a linear regression V = σ·R + c over
//	  R ≥ 2. The slope σ is the lattice-unit string tension.
//
// ✨ Failure semantics:
//
//	Both fitters degrade to "unavailable" — ErrTooFewPoints or
//	ErrNoConvergence — rather than ever reporting a defaulted zero. The
//	caller decides how to present an unavailable estimate; the ratio
//	m/√σ is only formed when both fits succeed.
package fit
