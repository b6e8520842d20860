package corr

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Spectrum is the per-slice outcome of the GEVP: Values[t] holds all
// generalized eigenvalues of C(t) against C(t₀) sorted descending, and
// Lambda[t] is the largest (the ground-state proxy λ₀). Slices whose
// eigenproblem was singular or whose reference was not positive
// definite carry Valid[t]==false and NaN entries; they are excluded
// from fitting, never fatal.
type Spectrum struct {
	Lambda []float64
	Values [][]float64
	Valid  []bool
}

// Solve computes the generalized eigenvalue sequence of the folded
// correlator against the reference slice t0 (conventionally 0) for
// every t ∈ [0, N/2).
//
// Method: Cholesky-factor C(t₀)=L·Lᵀ, whiten each slice to the
// symmetric W(t)=L⁻¹·C(t)·L⁻ᵀ, and solve the ordinary symmetric
// eigenproblem of W(t); its eigenvalues are the generalized ones. The
// per-slice solves share only the read-only factor and run in
// parallel.
//
// A reference slice that fails to factorize (not positive definite)
// marks every slice invalid. ErrReferenceIndex is the only error.
func Solve(c *Correlator, t0 int) (*Spectrum, error) {
	half := c.N / 2
	if t0 < 0 || t0 >= half {
		return nil, ErrReferenceIndex
	}

	sp := &Spectrum{
		Lambda: make([]float64, half),
		Values: make([][]float64, half),
		Valid:  make([]bool, half),
	}
	for t := range sp.Lambda {
		sp.Lambda[t] = math.NaN()
	}

	var chol mat.Cholesky
	if !chol.Factorize(c.Slices[t0]) {
		return sp, nil
	}
	low := mat.NewTriDense(c.Ops, mat.Lower, nil)
	chol.LTo(low)

	var g errgroup.Group
	for t := 0; t < half; t++ {
		t := t
		g.Go(func() error {
			vals, ok := whitenedEigenvalues(low, c.Slices[t])
			if !ok {
				return nil
			}
			sp.Values[t] = vals
			sp.Lambda[t] = vals[0]
			sp.Valid[t] = true
			return nil
		})
	}
	// Slice solves record their own validity; Wait is only a barrier.
	_ = g.Wait()
	return sp, nil
}

// whitenedEigenvalues solves the symmetric eigenproblem of L⁻¹·C·L⁻ᵀ
// and returns the eigenvalues sorted descending, or ok=false when a
// triangular solve or the factorization fails.
func whitenedEigenvalues(low *mat.TriDense, c *mat.SymDense) ([]float64, bool) {
	dim := c.SymmetricDim()

	var x mat.Dense
	if err := x.Solve(low, c); err != nil {
		return nil, false
	}
	var y mat.Dense
	if err := y.Solve(low, x.T()); err != nil {
		return nil, false
	}

	// y = (L⁻¹·C·L⁻ᵀ)ᵀ; average out the transpose's rounding asymmetry.
	w := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			w.SetSym(i, j, 0.5*(y.At(i, j)+y.At(j, i)))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(w, false) {
		return nil, false
	}
	vals := eig.Values(nil)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))
	return vals, true
}
