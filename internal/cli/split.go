// SPDX-License-Identifier: MIT
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/teamsplit/internal/logging"
	"github.com/katalvlaran/teamsplit/partition"
)

func newSplitCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [file|-]",
		Short: "Split matrix members into two balanced teams",
		Long: `Split reads a square rating matrix and prints the two teams that maximize
the mean intra-team rating. With no file (or "-") the matrix is read from
stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runSplit,
	}
	addInputFlags(cmd)

	p := partition.DefaultOptions()
	cmd.Flags().StringP("output", "o", "text", "output format: text, json, yaml, toml")
	cmd.Flags().Int("threshold", p.ExactThreshold, "largest member count solved exactly")
	cmd.Flags().Int("iterations", p.Iterations, "heuristic iteration budget")
	cmd.Flags().Int64("seed", p.Seed, "heuristic random seed (0 means the default)")
	cmd.Flags().Int("workers", p.Workers, "goroutines for the exact search")

	return cmd
}

func (a *app) runSplit(cmd *cobra.Command, args []string) error {
	pm, source, err := a.loadMatrix(args)
	if err != nil {
		return err
	}
	m, err := pm.Matrix()
	if err != nil {
		return err
	}

	log := logging.WithPhase(a.log, "partition")
	opts := a.cfg.PartitionOptions(log)
	if partition.StrategyFor(m.Rows(), opts) == partition.StrategyHeuristic && strings.EqualFold(a.cfg.Output.Format, "text") {
		st := newStyles(cmd.ErrOrStderr())
		fmt.Fprintln(cmd.ErrOrStderr(), st.warn.Render(fmt.Sprintf(
			"warning: %d members exceeds the exact limit of %d; the result is approximate",
			m.Rows(), opts.ExactThreshold,
		)))
	}

	res, err := partition.ComputeContext(cmd.Context(), m, opts)
	if err != nil {
		return err
	}
	log.Info("partition computed",
		"members", m.Rows(),
		"strategy", res.Strategy.String(),
		"quality", res.Quality,
	)

	return writeReport(cmd.OutOrStdout(), a.cfg.Output.Format, newReport(source, pm, res))
}
