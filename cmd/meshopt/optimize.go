package main

import (
	"github.com/spf13/cobra"
)

func (a *app) optimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize <in.obj> <out.obj>",
		Short: "Reorder a mesh and write the result",
		Example: `  meshopt optimize bunny.obj bunny.opt.obj
  meshopt optimize -a fifo -c 24 terrain.obj terrain.opt.obj`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.runner().OptimizeFile(args[0], args[1])
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	a.flags.RegisterOptimize(cmd.Flags())
	return cmd
}
