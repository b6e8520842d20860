// Package montecarlo runs the Markov chain that generates SU(2) gauge
// configurations and the measurement loop that turns them into the raw
// observables of the spectroscopy pipeline.
//
// 🚀 What lives here?
//
//	• Updater — one full-lattice Metropolis sweep: an independent
//	  near-identity proposal and accept/reject decision per link, with
//	  staples computed once per direction before the decisions.
//	• Driver  — the run state machine COLD_START → THERMALIZING →
//	  MEASURING → DONE: thermalization sweeps, decorrelation skips, and
//	  per-measurement glueball operators at every smearing depth plus
//	  Wilson loops on a hybrid (spatially smeared) field.
//	• Config  — the immutable run configuration, threaded explicitly
//	  through constructors so multiple runs (different β, sizes) can
//	  coexist in one process.
//
// ✨ Sampling conventions:
//
//   - ΔS = −(β/2)·Re Tr[(U_new − U_old)·Staple†]; decreasing action is
//     always accepted, increases with probability exp(−ΔS).
//   - Staples are computed once per direction per sweep, not recomputed
//     after partial acceptance. This single-pass scheme is part of the
//     sampled ensemble's definition and must not be "corrected".
//
// Concurrency:
//
//   - One logical chain: the field is mutated in strict sweep order.
//   - Within a sweep the per-site decisions are an embarrassingly
//     parallel map; proposals and uniform draws come from the chain's
//     RNG serially, then the decisions fan out over a worker group.
//   - math/rand.Rand is not goroutine-safe and is never shared.
package montecarlo
