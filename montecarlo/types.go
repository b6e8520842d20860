// Package montecarlo configuration and sentinel errors.
package montecarlo

import "errors"

// Sentinel errors for run configuration and driver state.
var (
	// ErrBadLattice indicates a lattice size below the minimum extent.
	ErrBadLattice = errors.New("montecarlo: lattice size must be at least 2")
	// ErrBadCoupling indicates a negative inverse coupling β.
	ErrBadCoupling = errors.New("montecarlo: beta must be non-negative")
	// ErrBadStep indicates a Metropolis step size outside (0,1].
	ErrBadStep = errors.New("montecarlo: step size must lie in (0,1]")
	// ErrBadSchedule indicates a negative or empty sweep/measurement schedule.
	ErrBadSchedule = errors.New("montecarlo: thermalization/skip must be non-negative and measurements positive")
	// ErrBadSmearing indicates smearing levels that are empty, non-positive
	// or not strictly ascending, or a mixing parameter outside (0,1).
	ErrBadSmearing = errors.New("montecarlo: smearing levels must be strictly ascending positive and alpha in (0,1)")
	// ErrBadLoopExtent indicates Wilson-loop extents outside [1, L).
	ErrBadLoopExtent = errors.New("montecarlo: wilson-loop extents must lie in [1, lattice size)")
	// ErrRunConsumed indicates a Driver whose Run was already invoked;
	// a driver owns exactly one Markov chain.
	ErrRunConsumed = errors.New("montecarlo: driver has already run")
	// ErrRunAborted wraps the context error when a run is cancelled at a
	// sweep boundary; in-flight measurement statistics are discarded.
	ErrRunAborted = errors.New("montecarlo: run aborted")
)

// Config is the immutable configuration of one simulation run.
// The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Size is the lattice extent L of the periodic L×L×L volume.
	Size int
	// Beta is the inverse coupling of the Wilson action.
	Beta float64
	// Therm is the number of full thermalization sweeps before the first
	// measurement.
	Therm int
	// Measurements is the number of measured configurations.
	Measurements int
	// Skip is the number of decorrelation sweeps between measurements.
	Skip int
	// Step is the Metropolis proposal step size ε ∈ (0,1].
	Step float64
	// SmearLevels are the ascending cumulative APE depths defining the
	// operator basis, e.g. {10,20,30}; one glueball operator per level.
	SmearLevels []int
	// SmearAlpha is the APE mixing parameter α ∈ (0,1).
	SmearAlpha float64
	// WilsonRMax and WilsonTMax bound the measured rectangular loops.
	WilsonRMax, WilsonTMax int
	// WilsonSmear is the spatial smearing depth of the hybrid field the
	// loops are measured on.
	WilsonSmear int
	// Seed seeds the chain's RNG; 0 selects a fixed default seed so runs
	// are reproducible by default.
	Seed int64
	// Workers bounds the parallel per-site decision map; 0 means one
	// worker per available CPU.
	Workers int
}

// DefaultConfig returns the reference configuration of the production
// runs: a 32³ volume at β=6 with a three-operator smearing basis.
func DefaultConfig() Config {
	return Config{
		Size:         32,
		Beta:         6.0,
		Therm:        1000,
		Measurements: 3000,
		Skip:         5,
		Step:         0.3,
		SmearLevels:  []int{10, 20, 30},
		SmearAlpha:   0.5,
		WilsonRMax:   6,
		WilsonTMax:   6,
		WilsonSmear:  10,
	}
}

// Validate checks the configuration against the sentinels above.
func (c Config) Validate() error {
	if c.Size < 2 {
		return ErrBadLattice
	}
	if c.Beta < 0 {
		return ErrBadCoupling
	}
	if c.Step <= 0 || c.Step > 1 {
		return ErrBadStep
	}
	if c.Therm < 0 || c.Skip < 0 || c.Measurements <= 0 {
		return ErrBadSchedule
	}
	if len(c.SmearLevels) == 0 || c.SmearAlpha <= 0 || c.SmearAlpha >= 1 {
		return ErrBadSmearing
	}
	prev := 0
	for _, lvl := range c.SmearLevels {
		if lvl <= prev {
			return ErrBadSmearing
		}
		prev = lvl
	}
	if c.WilsonSmear < 0 {
		return ErrBadSmearing
	}
	if c.WilsonRMax < 1 || c.WilsonRMax >= c.Size ||
		c.WilsonTMax < 1 || c.WilsonTMax >= c.Size {
		return ErrBadLoopExtent
	}
	return nil
}
