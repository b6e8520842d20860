package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/latticeworks/su2lat/fit"
	"github.com/latticeworks/su2lat/montecarlo"
)

// RunConfig is the flat YAML configuration shared by both phases.
// Unset keys keep the production defaults.
type RunConfig struct {
	LatticeSize    int     `yaml:"lattice_size"`
	Beta           float64 `yaml:"beta"`
	Thermalization int     `yaml:"thermalization"`
	Measurements   int     `yaml:"measurements"`
	Skip           int     `yaml:"skip"`
	Step           float64 `yaml:"step"`
	SmearLevels    []int   `yaml:"smear_levels"`
	SmearAlpha     float64 `yaml:"smear_alpha"`
	WilsonRMax     int     `yaml:"wilson_r_max"`
	WilsonTMax     int     `yaml:"wilson_t_max"`
	WilsonSmear    int     `yaml:"wilson_smear"`
	Seed           int64   `yaml:"seed"`
	Workers        int     `yaml:"workers"`

	GEVPReference      int `yaml:"gevp_reference"`
	FitTStart          int `yaml:"fit_t_start"`
	FitTEnd            int `yaml:"fit_t_end"`
	PotentialTimeSlice int `yaml:"potential_time_slice"`
}

// defaultRunConfig mirrors the library defaults into the YAML shape.
func defaultRunConfig() RunConfig {
	mc := montecarlo.DefaultConfig()
	mass := fit.DefaultMassOptions()
	pot := fit.DefaultPotentialOptions()
	return RunConfig{
		LatticeSize:        mc.Size,
		Beta:               mc.Beta,
		Thermalization:     mc.Therm,
		Measurements:       mc.Measurements,
		Skip:               mc.Skip,
		Step:               mc.Step,
		SmearLevels:        mc.SmearLevels,
		SmearAlpha:         mc.SmearAlpha,
		WilsonRMax:         mc.WilsonRMax,
		WilsonTMax:         mc.WilsonTMax,
		WilsonSmear:        mc.WilsonSmear,
		GEVPReference:      0,
		FitTStart:          mass.TStart,
		FitTEnd:            mass.TEnd,
		PotentialTimeSlice: pot.TimeSlice,
	}
}

// loadRunConfig reads path over the defaults; an empty path returns
// the defaults untouched.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// simulation maps the YAML shape onto the sampler configuration.
func (c RunConfig) simulation() montecarlo.Config {
	return montecarlo.Config{
		Size:         c.LatticeSize,
		Beta:         c.Beta,
		Therm:        c.Thermalization,
		Measurements: c.Measurements,
		Skip:         c.Skip,
		Step:         c.Step,
		SmearLevels:  c.SmearLevels,
		SmearAlpha:   c.SmearAlpha,
		WilsonRMax:   c.WilsonRMax,
		WilsonTMax:   c.WilsonTMax,
		WilsonSmear:  c.WilsonSmear,
		Seed:         c.Seed,
		Workers:      c.Workers,
	}
}

// massOptions and potentialOptions map the analysis knobs.
func (c RunConfig) massOptions() fit.MassOptions {
	opts := fit.DefaultMassOptions()
	opts.TStart = c.FitTStart
	opts.TEnd = c.FitTEnd
	return opts
}

func (c RunConfig) potentialOptions() fit.PotentialOptions {
	opts := fit.DefaultPotentialOptions()
	opts.TimeSlice = c.PotentialTimeSlice
	return opts
}
