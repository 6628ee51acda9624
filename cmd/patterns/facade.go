package main

import (
	"github.com/go-leo/design-pattern-demo/facade"
	"github.com/spf13/cobra"
)

func newFacadeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "facade",
		Short: "Drive both subsystems through the facade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := facade.NewFacade().Operation()
			return a.render(cmd.OutOrStdout(), out, facadeResult{Result: out})
		},
	}
}
