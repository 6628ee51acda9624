package main

import (
	"strings"

	"github.com/go-leo/design-pattern-demo/factory/method"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newFactoryCmd(a *app) *cobra.Command {
	var creator string
	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Run the creator's shared operation with each factory method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("creator") {
				a.cfg.Factory.Creator = creator
			}
			names := []string{"1", "2"}
			if a.cfg.Factory.Creator != "" {
				names = []string{a.cfg.Factory.Creator}
			}

			creators := method.NewCreatorFactory()
			results := make([]creatorResult, 0, len(names))
			lines := make([]string, 0, len(names))
			for _, name := range names {
				c, err := creators.Create(cmd.Context(), name)
				if err != nil {
					return err
				}
				a.logger.Debug("creator selected", zap.String("creator", name))
				out := method.SomeOperation(c)
				results = append(results, creatorResult{Creator: name, Result: out})
				lines = append(lines, out)
			}
			return a.render(cmd.OutOrStdout(), strings.Join(lines, "\n"), results)
		},
	}
	cmd.Flags().StringVarP(&creator, "creator", "c", "", "creator to run: 1 or 2 (default: both)")
	return cmd
}
