package montecarlo

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/latticeworks/su2lat/lattice"
)

// State enumerates the driver's run phases.
type State int

const (
	// ColdStart: the field exists (all links identity) but no sweep ran.
	ColdStart State = iota
	// Thermalizing: equilibration sweeps, no measurement.
	Thermalizing
	// Measuring: skip sweeps alternating with measurements.
	Measuring
	// Done: the configured sweep count completed; results are final.
	Done
)

// String returns the phase name for logs.
func (s State) String() string {
	switch s {
	case ColdStart:
		return "COLD_START"
	case Thermalizing:
		return "THERMALIZING"
	case Measuring:
		return "MEASURING"
	default:
		return "DONE"
	}
}

// Result is the raw output of one simulation run: the operator time
// series and the ensemble-averaged Wilson loops, the inputs of the
// analysis stage.
type Result struct {
	// Ops[m][k][z] is the glueball operator at measurement m, smearing
	// level k and axis position z; shape Measurements × len(SmearLevels) × L.
	Ops [][][]float64
	// Wilson[r][t] is the ensemble average of the (r+1)×(t+1) loop;
	// shape WilsonRMax × WilsonTMax.
	Wilson [][]float64
}

// Driver owns one Markov chain: the production gauge field, its
// updater, and the measurement schedule. A Driver runs exactly once.
type Driver struct {
	cfg     Config
	field   *lattice.Field
	updater *Updater
	state   State
	log     *slog.Logger
}

// NewDriver validates cfg and prepares a cold-started chain.
// logger may be nil to silence progress reporting.
func NewDriver(cfg Config, logger *slog.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	field, err := lattice.NewCold(cfg.Size)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	updater := &Updater{
		beta:    cfg.Beta,
		step:    cfg.Step,
		workers: workers,
		rng:     deriveRNG(rngFromSeed(cfg.Seed), 0),
	}

	return &Driver{
		cfg:     cfg,
		field:   field,
		updater: updater,
		state:   ColdStart,
		log:     logger,
	}, nil
}

// State returns the current run phase.
func (d *Driver) State() State { return d.state }

// Run executes the full schedule: thermalization, then the measurement
// loop. ctx is only consulted at sweep boundaries — there is no
// cancellation inside a sweep — and an abort discards the in-flight
// measurement's statistics entirely (ErrRunAborted wrapping ctx.Err()).
//
// A Driver can run once; a second call returns ErrRunConsumed.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	if d.state != ColdStart {
		return nil, ErrRunConsumed
	}

	d.state = Thermalizing
	d.info("thermalizing", slog.Int("sweeps", d.cfg.Therm))
	for i := 0; i < d.cfg.Therm; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRunAborted, err)
		}
		if err := d.updater.Sweep(d.field); err != nil {
			return nil, err
		}
	}

	d.state = Measuring
	nOps := len(d.cfg.SmearLevels)
	ops := make([][][]float64, d.cfg.Measurements)
	wilson := make([][]float64, d.cfg.WilsonRMax)
	for r := range wilson {
		wilson[r] = make([]float64, d.cfg.WilsonTMax)
	}

	progressEvery := d.cfg.Measurements / 10
	if progressEvery == 0 {
		progressEvery = 1
	}

	for m := 0; m < d.cfg.Measurements; m++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRunAborted, err)
		}
		for s := 0; s < d.cfg.Skip; s++ {
			if err := d.updater.Sweep(d.field); err != nil {
				return nil, err
			}
		}

		row, err := d.measureGlueballs(nOps)
		if err != nil {
			return nil, err
		}
		ops[m] = row

		if err := d.accumulateWilson(wilson); err != nil {
			return nil, err
		}

		if (m+1)%progressEvery == 0 {
			d.info("measuring",
				slog.Int("done", m+1),
				slog.Int("total", d.cfg.Measurements),
				slog.Float64("plaquette", d.field.MeanPlaquette()))
		}
	}

	for r := range wilson {
		for t := range wilson[r] {
			wilson[r][t] /= float64(d.cfg.Measurements)
		}
	}

	d.state = Done
	d.info("run complete")
	return &Result{Ops: ops, Wilson: wilson}, nil
}

// measureGlueballs evaluates the operator basis on one configuration:
// the smearing chain reuses the previous level's field and applies only
// the depth delta, never re-smearing from scratch.
func (d *Driver) measureGlueballs(nOps int) ([][]float64, error) {
	row := make([][]float64, nOps)
	cur := d.field.Clone()
	prev := 0
	for k, depth := range d.cfg.SmearLevels {
		var err error
		cur, err = cur.SmearSpatial(d.cfg.SmearAlpha, depth-prev)
		if err != nil {
			return nil, err
		}
		prev = depth
		row[k] = cur.GlueballProfile()
	}
	return row, nil
}

// accumulateWilson adds this configuration's loop traces, measured on a
// hybrid field: spatial links from a WilsonSmear-deep smear of the
// production field, temporal links unsmeared.
func (d *Driver) accumulateWilson(acc [][]float64) error {
	smeared, err := d.field.SmearSpatial(d.cfg.SmearAlpha, d.cfg.WilsonSmear)
	if err != nil {
		return err
	}
	hybrid := d.field.Clone()
	if err := hybrid.CopySpatialFrom(smeared); err != nil {
		return err
	}
	w, err := hybrid.WilsonLoops(d.cfg.WilsonRMax, d.cfg.WilsonTMax)
	if err != nil {
		return err
	}
	for r := range acc {
		for t := range acc[r] {
			acc[r][t] += w[r][t]
		}
	}
	return nil
}

func (d *Driver) info(msg string, args ...any) {
	if d.log != nil {
		d.log.Info(msg, append([]any{slog.String("state", d.state.String())}, args...)...)
	}
}
