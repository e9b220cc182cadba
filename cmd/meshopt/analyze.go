package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshopt/internal/meshio"
)

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file.obj>...",
		Short: "Report vertex cache statistics without modifying meshes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := a.runner()
			out := cmd.OutOrStdout()

			for _, path := range args {
				m, err := meshio.ReadOBJFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}

				stats, err := runner.Analyze(m)
				if err != nil {
					return fmt.Errorf("analyzing %s: %w", path, err)
				}

				fmt.Fprintf(out, "%s: %d triangles, %d vertices\n", path, m.TriangleCount(), m.VertexCount())
				printStats(out, "cache", stats)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&a.flags.CacheSize, "cache-size", "c", 0, "Simulated cache size")
	return cmd
}
