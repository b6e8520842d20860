package fit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// Mass fits the leading eigenvalue sequence lambda (indexed by folded
// time slice, with valid[t] marking usable entries; valid==nil means
// all usable) to
//
//	λ₀(t) ≈ A·cosh(m·(t − N/2)) + C
//
// over the window [opts.TStart, opts.TEnd), where axisLen is the full
// (unfolded) correlator axis length N. The cosh captures the two-sided
// propagation around the periodic axis; C absorbs the noise floor of
// finite statistics. Box constraints A ≥ 0, 0 ≤ m ≤ MaxMass and
// 0 ≤ C ≤ MaxOffset are enforced during the minimization.
//
// The standard error of m is taken from the Gauss–Newton covariance
// s²·(JᵀJ)⁻¹ at the optimum with s² = SSR/(n−3), the same scaling a
// χ²-normalized nonlinear fit reports.
//
// Errors: ErrBadWindow for an unusable window or options,
// ErrTooFewPoints for fewer than four usable points, ErrNoConvergence
// when the optimizer fails or the covariance is singular. An error
// means the mass is unavailable; no zero-valued estimate is returned.
func Mass(lambda []float64, valid []bool, axisLen int, opts MassOptions) (MassResult, error) {
	if opts.TStart < 0 || opts.TEnd <= opts.TStart || opts.TEnd > len(lambda) ||
		opts.MaxMass <= 0 || opts.MaxOffset <= 0 || axisLen <= 0 {
		return MassResult{}, ErrBadWindow
	}

	var ts, ys []float64
	for t := opts.TStart; t < opts.TEnd; t++ {
		if valid != nil && !valid[t] {
			continue
		}
		if math.IsNaN(lambda[t]) || math.IsInf(lambda[t], 0) {
			continue
		}
		ts = append(ts, float64(t))
		ys = append(ys, lambda[t])
	}
	// Three parameters plus at least one degree of freedom for the
	// error estimate.
	if len(ts) < 4 {
		return MassResult{}, ErrTooFewPoints
	}

	half := float64(axisLen) / 2
	model := func(t float64, p []float64) float64 {
		return p[0]*math.Cosh(p[1]*(t-half)) + p[2]
	}

	inBounds := func(p []float64) bool {
		return p[0] >= 0 &&
			p[1] >= 0 && p[1] <= opts.MaxMass &&
			p[2] >= 0 && p[2] <= opts.MaxOffset
	}

	resid := make([]float64, len(ts))
	ssrAt := func(p []float64) float64 {
		for i := range ts {
			resid[i] = ys[i] - model(ts[i], p)
		}
		return floats.Dot(resid, resid)
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			if !inBounds(p) {
				return math.Inf(1)
			}
			return ssrAt(p)
		},
	}

	// Reference starting point: the first windowed value as amplitude,
	// unit mass, near-zero offset.
	amp0 := ys[0]
	if amp0 <= 0 {
		amp0 = 1
	}
	p0 := []float64{amp0, 1.0, math.Min(0.01, opts.MaxOffset/2)}

	res, err := optimize.Minimize(problem, p0, nil, &optimize.NelderMead{})
	if err != nil {
		return MassResult{}, fmt.Errorf("%w: %w", ErrNoConvergence, err)
	}
	p := res.X
	if !inBounds(p) || math.IsInf(res.F, 0) || math.IsNaN(res.F) {
		return MassResult{}, ErrNoConvergence
	}

	stderr, err := massStderr(model, ts, p, ssrAt(p))
	if err != nil {
		return MassResult{}, err
	}
	return MassResult{
		Mass:      p[1],
		Stderr:    stderr,
		Amplitude: p[0],
		Offset:    p[2],
	}, nil
}

// massStderr propagates the residual variance through the numeric
// Jacobian of the model at the optimum: cov = s²·(JᵀJ)⁻¹.
func massStderr(model func(float64, []float64) float64, ts, p []float64, ssr float64) (float64, error) {
	const nPar = 3
	jac := mat.NewDense(len(ts), nPar, nil)
	for j := 0; j < nPar; j++ {
		h := 1e-6 * math.Max(1, math.Abs(p[j]))
		hi := append([]float64(nil), p...)
		lo := append([]float64(nil), p...)
		hi[j] += h
		lo[j] -= h
		for i, t := range ts {
			jac.Set(i, j, (model(t, hi)-model(t, lo))/(2*h))
		}
	}

	jtj := mat.NewSymDense(nPar, nil)
	for a := 0; a < nPar; a++ {
		for b := a; b < nPar; b++ {
			var acc float64
			for i := 0; i < len(ts); i++ {
				acc += jac.At(i, a) * jac.At(i, b)
			}
			jtj.SetSym(a, b, acc)
		}
	}

	var chol mat.Cholesky
	if !chol.Factorize(jtj) {
		return 0, ErrNoConvergence
	}
	var cov mat.SymDense
	if err := chol.InverseTo(&cov); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNoConvergence, err)
	}

	s2 := ssr / float64(len(ts)-nPar)
	variance := cov.At(1, 1) * s2
	if variance < 0 || math.IsNaN(variance) {
		return 0, ErrNoConvergence
	}
	return math.Sqrt(variance), nil
}
