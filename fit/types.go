// Package fit options, results, and sentinel errors.
package fit

import "errors"

// Sentinel errors for both fitters. Either sentinel means the estimate
// is unavailable; they are never folded into a zero-valued result.
var (
	// ErrTooFewPoints indicates fewer usable data points than the fit's
	// degrees of freedom require.
	ErrTooFewPoints = errors.New("fit: too few usable points")
	// ErrNoConvergence indicates the optimizer failed to produce a finite
	// solution on the given window.
	ErrNoConvergence = errors.New("fit: optimizer failed to converge")
	// ErrBadWindow indicates an empty or out-of-range fit window.
	ErrBadWindow = errors.New("fit: fit window out of range")
)

// MassOptions selects the time window and bounds of the cosh fit.
type MassOptions struct {
	// TStart and TEnd bound the fitted slices to [TStart, TEnd).
	TStart, TEnd int
	// MaxMass and MaxOffset are the upper box constraints on m and C
	// (lower bounds are zero for A, m and C alike).
	MaxMass, MaxOffset float64
}

// DefaultMassOptions returns the production fit window [1,5) with the
// reference bounds m ≤ 5, C ≤ 1.
func DefaultMassOptions() MassOptions {
	return MassOptions{TStart: 1, TEnd: 5, MaxMass: 5, MaxOffset: 1}
}

// MassResult is a converged cosh fit.
type MassResult struct {
	// Mass is the fitted mass gap m and Stderr its standard error from
	// the fit covariance.
	Mass, Stderr float64
	// Amplitude and Offset are the accompanying A and C estimates.
	Amplitude, Offset float64
}

// PotentialOptions selects the Wilson-loop ratio column and the
// short-distance cut of the potential fit.
type PotentialOptions struct {
	// TimeSlice is the 0-based temporal index T of the ratio
	// W(R,T)/W(R,T+1); TimeSlice+1 must exist in the accumulator.
	TimeSlice int
	// MinR is the smallest spatial extent admitted to the regression;
	// R below it is a lattice artifact regardless of finiteness.
	MinR int
}

// DefaultPotentialOptions returns the production choice: ratio columns
// (3,4) and the R ≥ 2 cut.
func DefaultPotentialOptions() PotentialOptions {
	return PotentialOptions{TimeSlice: 3, MinR: 2}
}

// PotentialResult is a converged potential fit.
type PotentialResult struct {
	// Sigma is the string tension (the regression slope) and Intercept
	// the constant term of V(R) = σ·R + c.
	Sigma, Intercept float64
	// R and V list the points that entered the regression.
	R, V []float64
}
