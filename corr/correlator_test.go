package corr_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/latticeworks/su2lat/corr"
)

// syntheticHistory builds a deterministic measurements × ops × n
// history with per-operator offsets and noise.
func syntheticHistory(nMeas, nOps, n int, seed int64) [][][]float64 {
	rng := rand.New(rand.NewSource(seed))
	h := make([][][]float64, nMeas)
	for m := range h {
		h[m] = make([][]float64, nOps)
		for k := range h[m] {
			series := make([]float64, n)
			for x := range series {
				series[x] = float64(k+1)*10 + rng.NormFloat64()
			}
			h[m][k] = series
		}
	}
	return h
}

// TestBuild_ShapeErrors exercises the input sentinels.
func TestBuild_ShapeErrors(t *testing.T) {
	_, err := corr.Build(nil)
	assert.ErrorIs(t, err, corr.ErrEmptyHistory)
	_, err = corr.Build([][][]float64{{}})
	assert.ErrorIs(t, err, corr.ErrEmptyHistory)

	ragged := syntheticHistory(3, 2, 4, 1)
	ragged[2][1] = ragged[2][1][:3]
	_, err = corr.Build(ragged)
	assert.ErrorIs(t, err, corr.ErrRaggedHistory)

	ragged = syntheticHistory(3, 2, 4, 1)
	ragged[1] = ragged[1][:1]
	_, err = corr.Build(ragged)
	assert.ErrorIs(t, err, corr.ErrRaggedHistory)
}

// TestBuild_ConstantSeriesVanishes: vacuum subtraction must annihilate
// a constant operator entirely.
func TestBuild_ConstantSeriesVanishes(t *testing.T) {
	const n = 6
	h := make([][][]float64, 5)
	for m := range h {
		series := make([]float64, n)
		for x := range series {
			series[x] = 42.0
		}
		h[m] = [][]float64{series}
	}

	c, err := corr.Build(h)
	require.NoError(t, err)
	for t0 := 0; t0 < n; t0++ {
		assert.InDelta(t, 0, c.Slices[t0].At(0, 0), 1e-12,
			"constant series must give a zero connected correlator")
	}
}

// TestBuild_SlicesSymmetric: every slice must satisfy C = Cᵀ exactly
// (they are stored symmetric, built from the symmetrized average).
func TestBuild_SlicesSymmetric(t *testing.T) {
	c, err := corr.Build(syntheticHistory(20, 3, 8, 2))
	require.NoError(t, err)
	require.Len(t, c.Slices, 8)
	assert.Equal(t, 3, c.Ops)

	for _, s := range c.Slices {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.Equal(t, s.At(i, j), s.At(j, i))
			}
		}
	}
}

// TestBuild_FoldedPairsEqual: after building, reflected slices must
// already coincide.
func TestBuild_FoldedPairsEqual(t *testing.T) {
	const n = 8
	c, err := corr.Build(syntheticHistory(15, 2, n, 3))
	require.NoError(t, err)

	for t0 := 1; t0 <= n/2; t0++ {
		mirror := n - t0
		if mirror == t0 {
			continue
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				assert.InDelta(t, c.Slices[t0].At(i, j), c.Slices[mirror].At(i, j), 1e-14)
			}
		}
	}
}

// TestFold_Idempotent: folding an already-folded sequence leaves every
// entry unchanged.
func TestFold_Idempotent(t *testing.T) {
	const n, ops = 10, 2
	rng := rand.New(rand.NewSource(4))
	slices := make([]*mat.SymDense, n)
	for t0 := range slices {
		s := mat.NewSymDense(ops, nil)
		for i := 0; i < ops; i++ {
			for j := i; j < ops; j++ {
				s.SetSym(i, j, rng.NormFloat64())
			}
		}
		slices[t0] = s
	}

	corr.Fold(slices)
	snapshot := make([]*mat.SymDense, n)
	for t0 := range slices {
		snapshot[t0] = mat.NewSymDense(ops, nil)
		snapshot[t0].CopySym(slices[t0])
	}

	corr.Fold(slices)
	for t0 := range slices {
		for i := 0; i < ops; i++ {
			for j := 0; j < ops; j++ {
				assert.Equalf(t, snapshot[t0].At(i, j), slices[t0].At(i, j),
					"second fold must be a no-op at t=%d", t0)
			}
		}
	}
}
