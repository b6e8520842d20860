// Package corr turns the raw operator time series of a simulation run
// into the folded cross-correlation matrices C(t) and solves the
// per-slice generalized eigenvalue problem (GEVP) that isolates the
// ground-state signal.
//
// 🚀 Pipeline:
//
//	• Build — vacuum-subtract each operator by its scalar ensemble mean,
//	  form C(t)[i][j] = ⟨Õ_i(x)·Õ_j(x+t)⟩ with cyclic x+t over the full
//	  axis, symmetrize ½(C+Cᵀ), and fold the periodic axis.
//	• Fold  — ½(C(t)+C(N−t)) written to both t and N−t, exploiting
//	  time-reflection symmetry; folding is idempotent.
//	• Solve — per slice t ∈ [0, N/2): C(t)·v = λ·C(t₀)·v via Cholesky
//	  whitening of the reference slice and a symmetric eigensolver,
//	  eigenvalues sorted descending.
//
// ✨ Failure semantics (graceful, per slice):
//
//   - A slice whose whitened eigenproblem fails to factorize is marked
//     invalid and excluded from fitting; the pipeline continues.
//   - A reference slice that is not positive definite invalidates every
//     slice, but is still not a fatal error — the fit stage will report
//     the mass as unavailable.
//
// Correlators are derived data: they are recomputed wholesale from the
// full operator history, never updated incrementally.
package corr
