package main

import (
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshopt/internal/config"
	"github.com/Faultbox/meshopt/internal/logger"
	"github.com/Faultbox/meshopt/internal/meshgen"
	"github.com/Faultbox/meshopt/internal/optimize"
)

func (a *app) benchCmd() *cobra.Command {
	var (
		size int
		seed uint64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Optimize a shuffled grid with every algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("grid size must be positive, got %d", size)
			}

			grid := meshgen.Grid(size)
			meshgen.Shuffle(grid.Indices, seed)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "grid %dx%d, %d triangles, seed %d\n", size, size, grid.TriangleCount(), seed)
			fmt.Fprintln(tw, "algorithm\tACMR before\tACMR after\tATVR after\ttime")

			for _, algorithm := range []string{config.AlgorithmGreedy, config.AlgorithmFifo} {
				cfg := *a.cfg
				cfg.Optimize.Algorithm = algorithm

				m := *grid
				m.Indices = slices.Clone(grid.Indices)
				m.Vertices = slices.Clone(grid.Vertices)

				report, err := optimize.New(&cfg, logger.Named("bench")).Optimize(&m)
				if err != nil {
					return fmt.Errorf("%s: %w", algorithm, err)
				}

				fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\t%s\n",
					algorithm, report.Before.ACMR, report.After.ACMR, report.After.ATVR, report.Elapsed)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 256, "Grid size in quads per side")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Shuffle seed")
	cmd.Flags().IntVarP(&a.flags.CacheSize, "cache-size", "c", 0, "Simulated cache size")
	cmd.Flags().BoolVar(&a.flags.NoFetch, "no-fetch", false, "Skip the vertex fetch remap")
	return cmd
}
