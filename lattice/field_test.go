package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeworks/su2lat/lattice"
	"github.com/latticeworks/su2lat/su2"
)

const tol = 1e-10

// randomField fills an L³ field with independent random group elements,
// deterministically from seed.
func randomField(t *testing.T, l int, seed int64) *lattice.Field {
	t.Helper()
	f, err := lattice.NewCold(l)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				for mu := 0; mu < 3; mu++ {
					require.NoError(t, f.SetLink(x, y, z, mu, su2.Random(rng, 0.9)))
				}
			}
		}
	}
	return f
}

// TestNewCold_AllIdentity verifies the cold start assigns the identity
// to every link and satisfies the group invariant.
func TestNewCold_AllIdentity(t *testing.T) {
	f, err := lattice.NewCold(4)
	require.NoError(t, err)
	assert.Equal(t, 4, f.Size())
	assert.Equal(t, 64, f.Sites())
	assert.True(t, f.CheckSpecialUnitary(tol))

	u, err := f.Link(3, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, su2.Identity(), u)
}

// TestNewCold_BadSize rejects lattices too small to close a plaquette.
func TestNewCold_BadSize(t *testing.T) {
	_, err := lattice.NewCold(1)
	assert.ErrorIs(t, err, lattice.ErrBadSize)
	_, err = lattice.NewCold(0)
	assert.ErrorIs(t, err, lattice.ErrBadSize)
}

// TestLink_PeriodicCoordinates checks coordinate wraparound in both
// directions and the direction-range sentinel.
func TestLink_PeriodicCoordinates(t *testing.T) {
	f := randomField(t, 3, 1)

	a, err := f.Link(0, 1, 2, 0)
	require.NoError(t, err)
	b, err := f.Link(3, 4, -1, 0)
	require.NoError(t, err)
	assert.Equal(t, a, b, "coordinates must wrap modulo L")

	_, err = f.Link(0, 0, 0, 3)
	assert.ErrorIs(t, err, lattice.ErrDirection)
	assert.ErrorIs(t, f.SetLink(0, 0, 0, -1, su2.Identity()), lattice.ErrDirection)
}

// TestClone_Independent verifies a clone shares no storage with its
// source.
func TestClone_Independent(t *testing.T) {
	f := randomField(t, 2, 2)
	g := f.Clone()

	orig, err := f.Link(0, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, g.SetLink(0, 0, 0, 0, su2.Identity()))

	after, err := f.Link(0, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, orig, after, "mutating the clone must not touch the source")
}

// TestCopySpatialFrom_LeavesTemporal verifies only directions 0 and 1
// are overwritten.
func TestCopySpatialFrom_LeavesTemporal(t *testing.T) {
	dst := randomField(t, 2, 3)
	src := randomField(t, 2, 4)

	temporal, err := dst.Link(1, 1, 0, 2)
	require.NoError(t, err)
	require.NoError(t, dst.CopySpatialFrom(src))

	got, err := dst.Link(1, 1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, temporal, got, "direction 2 must be untouched")

	want, err := src.Link(1, 1, 0, 0)
	require.NoError(t, err)
	got, err = dst.Link(1, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got, "direction 0 must come from src")

	other, err := lattice.NewCold(3)
	require.NoError(t, err)
	assert.ErrorIs(t, dst.CopySpatialFrom(other), lattice.ErrBadSize)
}
