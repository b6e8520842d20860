// Package lattice provides the gauge-field data structure of the
// simulation: the complete assignment of SU(2) link variables over a
// periodic 3-dimensional L×L×L lattice, together with the read-only
// geometric computations built on it.
//
// 🚀 What lives here?
//
//	• Field       — the link arena, indexed by (site, direction), with
//	  deep Clone for derived copies and exact periodic index arithmetic.
//	• Staples     — the neighbor-sum entering both the Metropolis action
//	  difference and APE smearing (full and spatial-only variants).
//	• SmearSpatial — iterative APE blending of spatial links, with SU(2)
//	  re-projection after every blend.
//	• GlueballProfile / WilsonLoops — the two gauge-invariant observables
//	  of the spectroscopy pipeline.
//
// ✨ Geometry conventions:
//
//   - Sites are (x,y,z) ∈ [0,L)³ with wraparound on every axis; a site
//     index is (x·L+y)·L+z and a link index is site·3+μ, μ ∈ {0,1,2}.
//   - Directions 0 and 1 are "spatial" (the glueball plane); direction 2
//     doubles as the correlator axis and the Wilson-loop time direction.
//
// Invariant: every stored link is in SU(2) to numerical tolerance. The
// package never repairs a violated invariant; smearing projects every
// blend and surfaces ErrSingularLink from a degenerate projection.
//
// All computations here are read-only over their input field except the
// explicit in-place setters; derived fields are value copies, never
// aliases of the production chain.
package lattice
