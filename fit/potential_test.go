package fit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeworks/su2lat/fit"
)

// areaLawLoops builds W(R,T) = exp(−σ·R·T), the pure area law, so
// V(R) = ln(W(R,T)/W(R,T+1)) = σ·R exactly for every column.
func areaLawLoops(sigma float64, rmax, tmax int) [][]float64 {
	w := make([][]float64, rmax)
	for r := range w {
		w[r] = make([]float64, tmax)
		for t := range w[r] {
			w[r][t] = math.Exp(-sigma * float64(r+1) * float64(t+1))
		}
	}
	return w
}

// TestPotential_RecoversAreaLaw is end-to-end scenario C: synthetic
// loops with ratio slope 0.1 per unit R must yield σ = 0.1.
func TestPotential_RecoversAreaLaw(t *testing.T) {
	w := areaLawLoops(0.1, 6, 6)
	res, err := fit.Potential(w, fit.DefaultPotentialOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.1, res.Sigma, 1e-10, "string tension")
	assert.InDelta(t, 0.0, res.Intercept, 1e-9, "pure area law has no constant term")
	assert.Len(t, res.R, 5, "R ∈ {2..6} must enter the fit")
}

// TestPotential_ShortDistanceCut poisons the R=1 row and verifies it
// never reaches the regression, finite or not.
func TestPotential_ShortDistanceCut(t *testing.T) {
	w := areaLawLoops(0.1, 6, 6)
	for t0 := range w[0] {
		w[0][t0] = 1e6
	}

	res, err := fit.Potential(w, fit.DefaultPotentialOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.1, res.Sigma, 1e-10,
		"R<2 entries must be excluded regardless of their values")
	for _, r := range res.R {
		assert.GreaterOrEqual(t, r, 2.0)
	}
}

// TestPotential_NonPositiveEntriesSkipped: rows whose loop averages
// went negative (noise-dominated) contribute no point.
func TestPotential_NonPositiveEntriesSkipped(t *testing.T) {
	w := areaLawLoops(0.1, 6, 6)
	w[3][3] = -1e-7

	res, err := fit.Potential(w, fit.DefaultPotentialOptions())
	require.NoError(t, err)
	assert.Len(t, res.R, 4, "the poisoned R=4 row must be dropped")
	assert.InDelta(t, 0.1, res.Sigma, 1e-10)
}

// TestPotential_TooFewPoints: with every usable row removed the string
// tension must be reported unavailable.
func TestPotential_TooFewPoints(t *testing.T) {
	w := areaLawLoops(0.1, 4, 6)
	w[2][3] = 0
	w[3][4] = 0

	_, err := fit.Potential(w, fit.DefaultPotentialOptions())
	assert.ErrorIs(t, err, fit.ErrTooFewPoints)
}

// TestPotential_BadWindow: a ratio column beyond the accumulator is a
// configuration error, not a data problem.
func TestPotential_BadWindow(t *testing.T) {
	w := areaLawLoops(0.1, 4, 4)
	opts := fit.DefaultPotentialOptions()
	opts.TimeSlice = 3
	_, err := fit.Potential(w, opts)
	assert.ErrorIs(t, err, fit.ErrBadWindow)

	_, err = fit.Potential(nil, fit.DefaultPotentialOptions())
	assert.ErrorIs(t, err, fit.ErrBadWindow)
}

// TestPotential_WithIntercept checks the constant term is separated
// from the slope: V(R) = 0.2·R + 0.5.
func TestPotential_WithIntercept(t *testing.T) {
	const rmax, tmax = 6, 6
	w := make([][]float64, rmax)
	for r := range w {
		w[r] = make([]float64, tmax)
		v := 0.2*float64(r+1) + 0.5
		for t0 := range w[r] {
			w[r][t0] = math.Exp(-v * float64(t0+1))
		}
	}

	res, err := fit.Potential(w, fit.DefaultPotentialOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.2, res.Sigma, 1e-10)
	assert.InDelta(t, 0.5, res.Intercept, 1e-9)
}
