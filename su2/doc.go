// Package su2 implements the SU(2) group element used as the link
// variable of a lattice gauge field: a 2×2 complex matrix with
// determinant 1 whose conjugate transpose is its inverse.
//
// 🚀 What lives here?
//
//	• Matrix — a fixed-size [2][2]complex128 value type with the handful
//	  of algebraic operations the simulation hot loop needs: products,
//	  conjugate transpose, real trace, determinant, blending.
//	• Project — re-unitarization onto the SU(2) manifold by determinant
//	  normalization, required after any convex blend of group elements.
//	• Random — a near-identity random group element whose deviation from
//	  the identity is bounded by a step parameter, the Metropolis
//	  proposal kernel.
//
// ✨ Why a value type?
//
//   - Link variables live in a flat arena indexed by (site, direction);
//     fixed-size values keep the arena contiguous and copy-by-assignment.
//   - No aliasing: every operation returns a new value, so smeared and
//     production fields can never share a link by accident.
//
// Tolerances:
//
//	DetTol guards Project against a (numerically) singular input, which
//	indicates a malformed simulation and is a hard error, never repaired.
package su2
