package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshopt/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	var (
		save bool
		out  string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long:  fmt.Sprintf("Print the effective configuration (defaults, %s, flags) as YAML and optionally save it.", config.FileName),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			switch {
			case out != "":
				if err := a.cfg.SaveTo(out); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "saved to %s\n", out)
			case save:
				if err := a.cfg.Save(); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "saved to %s\n", config.DefaultPath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save to the user config directory")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Save to this path")
	a.flags.RegisterOptimize(cmd.Flags())
	return cmd
}
