package fit

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Potential extracts the string tension from the averaged Wilson-loop
// accumulator wilson, indexed [R−1][T−1]. The static potential is
// estimated per spatial extent as
//
//	V(R) = ln( W(R, T) / W(R, T+1) )
//
// at the configured TimeSlice, admitted only where both loop averages
// are strictly positive and V is finite, and only for R ≥ MinR — the
// short-distance entries are lattice artifacts and never enter the
// regression regardless of finiteness. The surviving points are fitted
// to V(R) = σ·R + c by ordinary least squares.
//
// Errors: ErrBadWindow if TimeSlice+1 does not exist in the
// accumulator, ErrTooFewPoints when fewer than two points survive the
// cuts. An error means the string tension is unavailable.
func Potential(wilson [][]float64, opts PotentialOptions) (PotentialResult, error) {
	if len(wilson) == 0 || opts.TimeSlice < 0 || opts.MinR < 1 {
		return PotentialResult{}, ErrBadWindow
	}
	for _, row := range wilson {
		if opts.TimeSlice+1 >= len(row) {
			return PotentialResult{}, ErrBadWindow
		}
	}

	var rs, vs []float64
	for r := range wilson {
		extent := r + 1
		if extent < opts.MinR {
			continue
		}
		wT, wT1 := wilson[r][opts.TimeSlice], wilson[r][opts.TimeSlice+1]
		if wT <= 0 || wT1 <= 0 {
			continue
		}
		v := math.Log(wT / wT1)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		rs = append(rs, float64(extent))
		vs = append(vs, v)
	}
	if len(rs) < 2 {
		return PotentialResult{}, ErrTooFewPoints
	}

	intercept, slope := stat.LinearRegression(rs, vs, nil, false)
	if math.IsNaN(slope) || math.IsInf(slope, 0) {
		return PotentialResult{}, ErrNoConvergence
	}
	return PotentialResult{Sigma: slope, Intercept: intercept, R: rs, V: vs}, nil
}
