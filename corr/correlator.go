package corr

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for correlator construction and the GEVP stage.
var (
	// ErrEmptyHistory indicates an operator history with no measurements,
	// no operators, or a zero-length axis.
	ErrEmptyHistory = errors.New("corr: operator history must be non-empty")
	// ErrRaggedHistory indicates inconsistent inner dimensions.
	ErrRaggedHistory = errors.New("corr: operator history must be rectangular")
	// ErrReferenceIndex indicates a GEVP reference slice outside [0, N/2).
	ErrReferenceIndex = errors.New("corr: reference time index out of range")
)

// Correlator holds the symmetrized, folded cross-correlation matrices
// of an operator basis: Slices[t] is the n_ops×n_ops matrix C(t) for
// every cyclic separation t along the axis of length N. Only
// t ∈ [0, N/2] carries independent information after folding.
type Correlator struct {
	// N is the correlator axis length (the lattice extent L).
	N int
	// Ops is the operator basis size.
	Ops int
	// Slices[t] is C(t); len(Slices) == N.
	Slices []*mat.SymDense
}

// Build constructs the correlator from an operator history of shape
// measurements × operators × axis length: vacuum subtraction, cyclic
// cross-correlation, symmetrization, then an idempotent fold.
func Build(history [][][]float64) (*Correlator, error) {
	nMeas := len(history)
	if nMeas == 0 || len(history[0]) == 0 || len(history[0][0]) == 0 {
		return nil, ErrEmptyHistory
	}
	nOps := len(history[0])
	n := len(history[0][0])
	for _, row := range history {
		if len(row) != nOps {
			return nil, ErrRaggedHistory
		}
		for _, series := range row {
			if len(series) != n {
				return nil, ErrRaggedHistory
			}
		}
	}

	// Vacuum subtraction: one scalar per operator, the mean over all
	// measurements and axis positions.
	vev := make([]float64, nOps)
	for _, row := range history {
		for k, series := range row {
			for _, v := range series {
				vev[k] += v
			}
		}
	}
	for k := range vev {
		vev[k] /= float64(nMeas * n)
	}

	// C(t)[i][j] = mean over (measurement, x) of Õ_i(x)·Õ_j(x+t).
	norm := 1 / float64(nMeas*n)
	slices := make([]*mat.SymDense, n)
	for t := 0; t < n; t++ {
		c := make([]float64, nOps*nOps)
		for _, row := range history {
			for i := 0; i < nOps; i++ {
				for j := 0; j < nOps; j++ {
					var acc float64
					for x := 0; x < n; x++ {
						acc += (row[i][x] - vev[i]) * (row[j][(x+t)%n] - vev[j])
					}
					c[i*nOps+j] += acc
				}
			}
		}
		// Symmetrize: measurement noise breaks exact operator-exchange
		// symmetry; ½(C+Cᵀ) restores it before the symmetric solver.
		sym := mat.NewSymDense(nOps, nil)
		for i := 0; i < nOps; i++ {
			for j := i; j < nOps; j++ {
				sym.SetSym(i, j, 0.5*(c[i*nOps+j]+c[j*nOps+i])*norm)
			}
		}
		slices[t] = sym
	}

	Fold(slices)
	return &Correlator{N: n, Ops: nOps, Slices: slices}, nil
}

// Fold averages time-reflected slices in place: for 1 ≤ t ≤ N/2 the
// mean ½(C(t)+C(N−t)) replaces both C(t) and C(N−t), so a second fold
// is a no-op.
func Fold(slices []*mat.SymDense) {
	n := len(slices)
	for t := 1; t <= n/2; t++ {
		mirror := (n - t) % n
		if mirror == t {
			continue
		}
		a, b := slices[t], slices[mirror]
		dim := a.SymmetricDim()
		for i := 0; i < dim; i++ {
			for j := i; j < dim; j++ {
				v := 0.5 * (a.At(i, j) + b.At(i, j))
				a.SetSym(i, j, v)
				b.SetSym(i, j, v)
			}
		}
	}
}
