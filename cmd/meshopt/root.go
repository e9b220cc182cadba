package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshopt/internal/config"
	"github.com/Faultbox/meshopt/internal/logger"
	"github.com/Faultbox/meshopt/internal/optimize"
	"github.com/Faultbox/meshopt/pkg/meshopt"
)

// app carries flags and the loaded config through the command tree.
type app struct {
	flags config.Flags
	cfg   *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "meshopt",
		Short:         "Reorder triangle meshes for vertex cache efficiency",
		Long:          `meshopt reorders the index buffer of triangle meshes so a GPU's post-transform vertex cache is reused as much as possible, and optionally renumbers vertices for sequential fetch.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(&a.flags)
			if err != nil {
				return err
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			a.cfg = cfg
			logger.Sugar.Debugf("config: %+v", *cfg)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	a.flags.RegisterGlobal(root.PersistentFlags())

	root.AddCommand(a.optimizeCmd())
	root.AddCommand(a.analyzeCmd())
	root.AddCommand(a.benchCmd())
	root.AddCommand(a.configCmd())

	return root
}

// runner builds a pipeline runner from the loaded config.
func (a *app) runner() *optimize.Runner {
	return optimize.New(a.cfg, logger.Named("optimize"))
}

func printStats(w io.Writer, label string, s meshopt.Statistics) {
	fmt.Fprintf(w, "%-8s ACMR %.3f  ATVR %.3f  transformed %d", label, s.ACMR, s.ATVR, s.VerticesTransformed)
	if s.WarpsExecuted > 0 {
		fmt.Fprintf(w, "  warps %d", s.WarpsExecuted)
	}
	fmt.Fprintln(w)
}

func printReport(w io.Writer, r *optimize.Report) {
	fmt.Fprintf(w, "Mesh:      %s\n", r.Name)
	fmt.Fprintf(w, "Algorithm: %s\n", r.Algorithm)
	fmt.Fprintf(w, "Triangles: %d\n", r.Triangles)
	fmt.Fprintf(w, "Vertices:  %d (%d referenced)\n", r.Vertices, r.UniqueVertices)
	fmt.Fprintf(w, "Time:      %s\n", r.Elapsed)
	printStats(w, "before", r.Before)
	printStats(w, "after", r.After)
}
