package su2_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeworks/su2lat/su2"
)

const tol = 1e-12

// TestIdentity_IsSpecialUnitary verifies the identity element satisfies
// the group membership check exactly.
func TestIdentity_IsSpecialUnitary(t *testing.T) {
	id := su2.Identity()
	assert.True(t, id.IsSpecialUnitary(tol), "identity must be in SU(2)")
	assert.Equal(t, 2.0, id.TraceReal(), "Re Tr I must be 2")
	assert.Equal(t, complex128(1), id.Det(), "det I must be 1")
}

// TestMul_Associative checks (a·b)·c == a·(b·c) on random group elements.
func TestMul_Associative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := su2.Random(rng, 0.9)
	b := su2.Random(rng, 0.9)
	c := su2.Random(rng, 0.9)

	left := a.Mul(b).Mul(c)
	right := a.Mul(b.Mul(c))
	assert.Less(t, left.Sub(right).Dagger().Mul(left.Sub(right)).TraceReal(), tol,
		"matrix product must be associative")
}

// TestDagger_IsInverse verifies U·U† = I for a random group element.
func TestDagger_IsInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	u := su2.Random(rng, 0.5)
	p := u.Mul(u.Dagger())
	assert.Less(t, cmplx.Abs(p[0][0]-1), 1e-10)
	assert.Less(t, cmplx.Abs(p[1][1]-1), 1e-10)
	assert.Less(t, cmplx.Abs(p[0][1]), 1e-10)
	assert.Less(t, cmplx.Abs(p[1][0]), 1e-10)
}

// TestRandom_IsGroupElement draws many proposals across step sizes and
// asserts every one satisfies the SU(2) invariant within tolerance.
func TestRandom_IsGroupElement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, eps := range []float64{0.05, 0.3, 0.9, 1.0} {
		for i := 0; i < 200; i++ {
			u := su2.Random(rng, eps)
			assert.Truef(t, u.IsSpecialUnitary(1e-10),
				"proposal with eps=%v must be in SU(2): unitarity err %v, det %v",
				eps, u.UnitarityError(), u.Det())
		}
	}
}

// TestRandom_SmallStepNearIdentity asserts the proposal collapses onto
// ±I as eps → 0: |Re Tr U| must approach 2.
func TestRandom_SmallStepNearIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		u := su2.Random(rng, 0.01)
		tr := u.TraceReal()
		if tr < 0 {
			tr = -tr
		}
		assert.Greater(t, tr, 2-1e-3, "eps=0.01 proposal must stay near ±identity")
	}
}

// TestProject_RestoresInvariant blends two group elements (leaving the
// manifold) and verifies projection restores membership.
func TestProject_RestoresInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	a := su2.Random(rng, 0.7)
	b := su2.Random(rng, 0.7)

	blend := a.Scale(0.5).Add(b.Scale(0.5))
	proj, err := blend.Project()
	require.NoError(t, err, "projection of a generic blend must succeed")
	assert.Less(t, proj.UnitarityError(), 1e-10, "‖U†U−I‖ after projection")
	assert.Less(t, cmplx.Abs(proj.Det()-1), 1e-10, "|det U − 1| after projection")
}

// TestProject_SingularInput verifies that a (near-)singular matrix is a
// hard error, not a silently repaired link.
func TestProject_SingularInput(t *testing.T) {
	var zero su2.Matrix
	_, err := zero.Project()
	assert.ErrorIs(t, err, su2.ErrSingularLink, "zero matrix must refuse projection")

	rank1 := su2.Matrix{{1, 1}, {1, 1}}
	_, err = rank1.Project()
	assert.ErrorIs(t, err, su2.ErrSingularLink, "rank-1 matrix must refuse projection")
}

// TestProject_FixedPointOnGroup checks projection is the identity map on
// matrices already in SU(2).
func TestProject_FixedPointOnGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	u := su2.Random(rng, 0.4)
	p, err := u.Project()
	require.NoError(t, err)
	d := p.Sub(u)
	assert.Less(t, d.Dagger().Mul(d).TraceReal(), 1e-20,
		"projection must fix group elements")
}
