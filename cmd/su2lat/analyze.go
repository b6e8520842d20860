package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/latticeworks/su2lat/bundle"
	"github.com/latticeworks/su2lat/corr"
	"github.com/latticeworks/su2lat/fit"
)

// newAnalyzeCmd wires the spectroscopy phase: correlator, GEVP, fits.
func newAnalyzeCmd(logger *slog.Logger) *cobra.Command {
	var configPath, inPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Extract the mass gap and string tension from a bundle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(configPath)
			if err != nil {
				return err
			}

			b, err := bundle.Load(inPath)
			if err != nil {
				return err
			}
			logger.Info("bundle loaded",
				slog.Int("L", b.L),
				slog.Float64("beta", b.Beta),
				slog.Int("measurements", b.Measurements),
				slog.Int("operators", b.Operators))

			c, err := corr.Build(b.Ops)
			if err != nil {
				return err
			}
			spectrum, err := corr.Solve(c, cfg.GEVPReference)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			mass, massErr := fit.Mass(spectrum.Lambda, spectrum.Valid, c.N, cfg.massOptions())
			switch {
			case massErr == nil:
				fmt.Fprintf(out, "mass gap:       %.4f +/- %.4f\n", mass.Mass, mass.Stderr)
			case errors.Is(massErr, fit.ErrTooFewPoints) || errors.Is(massErr, fit.ErrNoConvergence):
				fmt.Fprintln(out, "mass gap:       unavailable")
			default:
				return massErr
			}

			pot, potErr := fit.Potential(b.Wilson, cfg.potentialOptions())
			switch {
			case potErr == nil:
				fmt.Fprintf(out, "string tension: %.4f\n", pot.Sigma)
			case errors.Is(potErr, fit.ErrTooFewPoints) || errors.Is(potErr, fit.ErrNoConvergence):
				fmt.Fprintln(out, "string tension: unavailable")
			default:
				return potErr
			}

			if massErr == nil && potErr == nil && pot.Sigma > 0 {
				fmt.Fprintf(out, "ratio m/sqrt(sigma): %.4f\n", mass.Mass/math.Sqrt(pot.Sigma))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run configuration (defaults apply when omitted)")
	cmd.Flags().StringVarP(&inPath, "in", "i", "run.bundle", "input bundle path")
	return cmd
}
