package main

import (
	"fmt"
	"strings"

	"github.com/go-leo/design-pattern-demo/strategy"
	"github.com/go-leo/gox/slicex"
	"github.com/spf13/cobra"
)

func newStrategyCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "strategy [item...]",
		Short: "Reorder items with the sort or reverse strategy",
		Example: `  patterns strategy --strategy reverse a b c d e
  patterns strategy -o json pear apple fig`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("strategy") {
				a.cfg.Strategy.Name = name
			}
			s, err := strategy.Lookup(a.cfg.Strategy.Name)
			if err != nil {
				return err
			}
			input := args
			if slicex.IsEmpty(input) {
				input = a.cfg.Strategy.Input
			}

			c := strategy.NewContext(
				strategy.WithDecorators(strategy.Logging(a.logger)),
				strategy.WithStrategy(s),
			)
			output, err := c.Execute(input)
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(),
				fmt.Sprintf("%s: %s", a.cfg.Strategy.Name, strings.Join(output, " ")),
				strategyResult{Strategy: a.cfg.Strategy.Name, Input: input, Output: output})
		},
	}
	cmd.Flags().StringVarP(&name, "strategy", "s", strategy.SortName,
		"strategy to apply: "+strings.Join(strategy.Names(), ", "))
	return cmd
}
