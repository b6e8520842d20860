package su2

import (
	"math"
	"math/rand"
)

// Random draws a random SU(2) element close to the identity.
//
// The element is built from a unit quaternion (a₀, a₁, a₂, a₃) whose
// real part a₀ is pinned near ±√(1−ε²) and whose imaginary components
// are drawn uniformly and scaled by ε, so the rotation angle away from
// the identity never exceeds the step size ε. The result is an exact
// group element up to floating-point rounding; no projection is needed.
//
// rng must not be nil and must not be shared across goroutines.
// For eps ∈ (0, 1] the acceptance rate of a Metropolis chain using this
// proposal is tuned by eps alone.
func Random(rng *rand.Rand, eps float64) Matrix {
	r0 := rng.Float64() - 0.5
	a0 := math.Sqrt(1 - eps*eps)
	if r0 < 0 {
		a0 = -a0
	}
	a1 := (rng.Float64() - 0.5) * eps
	a2 := (rng.Float64() - 0.5) * eps
	a3 := (rng.Float64() - 0.5) * eps

	norm := math.Sqrt(a0*a0 + a1*a1 + a2*a2 + a3*a3)
	a0 /= norm
	a1 /= norm
	a2 /= norm
	a3 /= norm

	return Matrix{
		{complex(a0, a3), complex(a2, a1)},
		{complex(-a2, a1), complex(a0, -a3)},
	}
}
