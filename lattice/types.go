// Package lattice sentinel errors and shared constants.
package lattice

import "errors"

// Sentinel errors for lattice operations.
var (
	// ErrBadSize indicates a lattice extent too small to close a plaquette.
	ErrBadSize = errors.New("lattice: size must be at least 2")
	// ErrDirection indicates a direction index outside {0,1,2}.
	ErrDirection = errors.New("lattice: direction must be 0, 1 or 2")
	// ErrAlphaRange indicates a smearing mixing parameter outside (0,1).
	ErrAlphaRange = errors.New("lattice: smearing alpha must lie in (0,1)")
	// ErrSmearSteps indicates a negative smearing step count.
	ErrSmearSteps = errors.New("lattice: smearing steps must be non-negative")
	// ErrLoopExtent indicates a Wilson-loop extent outside [1, L).
	ErrLoopExtent = errors.New("lattice: loop extent must lie in [1, lattice size)")
)

// dims is the number of lattice directions.
const dims = 3

// spatialDims bounds the directions touched by spatial staples and
// smearing: μ, ν ∈ {0,1}.
const spatialDims = 2
