package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/latticeworks/su2lat/bundle"
	"github.com/latticeworks/su2lat/montecarlo"
)

// newSimulateCmd wires the data-collection phase: thermalize, measure,
// persist the bundle.
func newSimulateCmd(logger *slog.Logger) *cobra.Command {
	var configPath, outPath string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate gauge configurations and measure observables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return err
			}
			mc := cfg.simulation()

			logger.Info("starting run",
				slog.Int("L", mc.Size),
				slog.Float64("beta", mc.Beta),
				slog.Int("therm", mc.Therm),
				slog.Int("measurements", mc.Measurements))

			driver, err := montecarlo.NewDriver(mc, logger)
			if err != nil {
				return err
			}
			res, err := driver.Run(cmd.Context())
			if err != nil {
				return err
			}

			b := &bundle.Bundle{
				L:            mc.Size,
				Beta:         mc.Beta,
				Measurements: mc.Measurements,
				Operators:    len(mc.SmearLevels),
				Ops:          res.Ops,
				Wilson:       res.Wilson,
			}
			if err := bundle.Save(outPath, b); err != nil {
				return err
			}
			logger.Info("bundle written", slog.String("path", outPath))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run configuration (defaults apply when omitted)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "run.bundle", "output bundle path")
	return cmd
}
