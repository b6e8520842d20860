// Command su2lat runs the SU(2) lattice pipeline in two offline phases:
//
//	su2lat simulate --config run.yaml --out run.bundle
//	su2lat analyze  --in run.bundle  --config run.yaml
//
// simulate generates gauge configurations by Metropolis sampling and
// persists the measured observables as a bundle; analyze loads the
// bundle, solves the GEVP, and reports the mass gap, the string
// tension, and their ratio. There is no network surface; the bundle
// file is the only handoff between the phases.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd assembles the command tree; split out so tests can drive
// the pipeline through the same surface the binary exposes.
func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "su2lat",
		Short:         "SU(2) lattice Monte Carlo simulation and spectroscopy",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd(logger), newAnalyzeCmd(logger))
	return root
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	root := newRootCmd(logger)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", slog.Any("err", err))
		os.Exit(1)
	}
}
