// Package su2lat is a Monte Carlo laboratory for 3-dimensional SU(2)
// lattice gauge theory — from stochastic generation of gauge
// configurations to the spectroscopy that extracts a glueball mass and
// a string tension from them.
//
// 🚀 What is su2lat?
//
//	An offline, two-phase batch pipeline:
//		• Simulation: Metropolis sampling of SU(2) link variables on a
//		  periodic L×L×L lattice, APE-smeared operator measurement, and
//		  Wilson-loop accumulation, persisted as one bundle file.
//		• Analysis: folded correlator matrices, a per-slice generalized
//		  eigenvalue decomposition, a cosh+offset mass fit, and a linear
//		  static-potential fit.
//
// ✨ Why choose su2lat?
//
//   - Deterministic – seeded chains reproduce bit for bit, independent
//     of worker count
//   - Honest failure modes – singular slices are skipped, unavailable
//     fits are reported as such, never as zero
//   - Value-type fields – smeared bases are deep copies; the production
//     chain can never alias a derived field
//   - Pure batch – no network, no wire protocol; a bundle file is the
//     only interface between the phases
//
// Everything is organized under focused packages:
//
//	su2/        — SU(2) link matrices: products, projection, proposals
//	lattice/    — the gauge field, staples, smearing, observables
//	montecarlo/ — the Metropolis updater and the run state machine
//	corr/       — correlator construction and the GEVP solver
//	fit/        — mass-gap and string-tension extraction
//	bundle/     — the persisted simulation→analysis handoff
//	cmd/su2lat/ — the simulate/analyze command-line interface
//
// Quick start:
//
//	cfg := montecarlo.DefaultConfig()
//	cfg.Size, cfg.Measurements = 16, 500
//	driver, _ := montecarlo.NewDriver(cfg, nil)
//	res, _ := driver.Run(ctx)
//	c, _ := corr.Build(res.Ops)
//	spectrum, _ := corr.Solve(c, 0)
//	mass, err := fit.Mass(spectrum.Lambda, spectrum.Valid, c.N, fit.DefaultMassOptions())
//
// See each package's doc.go for contracts, failure semantics, and the
// numeric conventions of the sampler.
package su2lat
