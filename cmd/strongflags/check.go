package main

import (
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check FILE...",
		GroupID: "actions",
		Short:   "Validate TOML declaration files without generating code",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			return g.Check(cmd.Context(), args...)
		},
	}
}
