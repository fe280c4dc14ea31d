package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/server"
)

func newScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			all := scenario.Builtins()
			sums := make([]server.ScenarioSummary, len(all))
			for i, s := range all {
				sums[i] = server.Summarize(s)
			}
			if flagFmt == "json" {
				return formatJSON(out, sums)
			}
			rows := make([][]string, len(sums))
			for i, s := range sums {
				rows[i] = []string{
					s.Name,
					fmt.Sprintf("%dx%d", s.Height, s.Width),
					s.Start.String(),
					s.Goal.String(),
					s.Description,
				}
			}
			formatTable(out, []string{"NAME", "SIZE", "START", "GOAL", "DESCRIPTION"}, rows)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <scenario>",
		Short: "Print a scenario as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Resolve(args[0])
			if err != nil {
				return err
			}
			return scenario.Encode(cmd.OutOrStdout(), s)
		},
	})
	return cmd
}
