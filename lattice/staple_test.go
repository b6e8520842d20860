package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeworks/su2lat/lattice"
	"github.com/latticeworks/su2lat/su2"
)

// matNear asserts two matrices agree entrywise within tol.
func matNear(t *testing.T, want, got su2.Matrix, msg string) {
	t.Helper()
	d := want.Sub(got)
	assert.Less(t, d.Dagger().Mul(d).TraceReal(), tol, msg)
}

// TestStaples_ColdField checks the staple sum on an all-identity field:
// two excluded-direction choices × two orientations give 4·I for the
// full staple, one choice × two orientations give 2·I spatially.
func TestStaples_ColdField(t *testing.T) {
	f, err := lattice.NewCold(4)
	require.NoError(t, err)

	full, err := f.Staples(0)
	require.NoError(t, err)
	for _, st := range full {
		matNear(t, su2.Identity().Scale(4), st, "full cold staple must be 4·I")
	}

	spatial, err := f.SpatialStaples(0)
	require.NoError(t, err)
	for _, st := range spatial {
		matNear(t, su2.Identity().Scale(2), st, "spatial cold staple must be 2·I")
	}
}

// TestStaples_DirectionRange exercises the direction sentinels,
// including the spatial-only restriction.
func TestStaples_DirectionRange(t *testing.T) {
	f, err := lattice.NewCold(2)
	require.NoError(t, err)

	_, err = f.Staples(3)
	assert.ErrorIs(t, err, lattice.ErrDirection)
	_, err = f.Staples(-1)
	assert.ErrorIs(t, err, lattice.ErrDirection)
	_, err = f.SpatialStaples(2)
	assert.ErrorIs(t, err, lattice.ErrDirection, "direction 2 is not spatial")
}

// TestStaples_TranslationInvariance shifts every link of a random field
// by a fixed lattice vector and verifies the staples shift with it —
// the periodic boundary must be exact.
func TestStaples_TranslationInvariance(t *testing.T) {
	const l = 3
	f := randomField(t, l, 17)

	// g(x + d) = f(x) for the fixed displacement d.
	d := [3]int{1, 2, 1}
	g, err := lattice.NewCold(l)
	require.NoError(t, err)
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				for mu := 0; mu < 3; mu++ {
					u, err := f.Link(x, y, z, mu)
					require.NoError(t, err)
					require.NoError(t, g.SetLink(x+d[0], y+d[1], z+d[2], mu, u))
				}
			}
		}
	}

	for mu := 0; mu < 3; mu++ {
		sf, err := f.Staples(mu)
		require.NoError(t, err)
		sg, err := g.Staples(mu)
		require.NoError(t, err)
		for x := 0; x < l; x++ {
			for y := 0; y < l; y++ {
				for z := 0; z < l; z++ {
					src := (x*l+y)*l + z
					dst := (((x+d[0])%l)*l+(y+d[1])%l)*l + (z+d[2])%l
					matNear(t, sf[src], sg[dst], "staple must follow the translation")
				}
			}
		}
	}
}

// TestStaples_ReadOnly verifies the staple computation leaves the field
// untouched.
func TestStaples_ReadOnly(t *testing.T) {
	f := randomField(t, 2, 23)
	before, err := f.Link(1, 0, 1, 2)
	require.NoError(t, err)

	_, err = f.Staples(1)
	require.NoError(t, err)

	after, err := f.Link(1, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
