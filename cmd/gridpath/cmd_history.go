package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/runlog"
)

func newHistoryCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
		stats  bool
	)
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded runs, show one run, or summarize per method",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := runlog.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch {
			case len(args) == 1:
				run, err := store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				if flagFmt == "json" {
					return formatJSON(out, run)
				}
				formatTable(out, runHeaders, [][]string{runRow(run)})
				if len(run.Path) > 0 {
					fmt.Fprintf(out, "\npath: %s\n", moves(run.Path))
				}
				return nil

			case stats:
				ms, err := store.Stats(ctx)
				if err != nil {
					return err
				}
				if flagFmt == "json" {
					return formatJSON(out, ms)
				}
				rows := make([][]string, len(ms))
				for i, s := range ms {
					rows[i] = []string{
						s.Method.String(),
						fmt.Sprint(s.Runs),
						fmt.Sprint(s.Found),
						fmt.Sprintf("%.1f", s.AvgVisited),
						s.AvgDuration.String(),
					}
				}
				formatTable(out, []string{"METHOD", "RUNS", "FOUND", "AVG VISITED", "AVG DURATION"}, rows)
				return nil
			}

			runs, err := store.List(ctx, limit)
			if err != nil {
				return err
			}
			if flagFmt == "json" {
				return formatJSON(out, runs)
			}
			rows := make([][]string, len(runs))
			for i, r := range runs {
				rows[i] = runRow(r)
			}
			formatTable(out, runHeaders, rows)
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", envOr("GRIDPATH_DB_PATH", "gridpath.db"), "History database path (env: GRIDPATH_DB_PATH)")
	cmd.Flags().IntVar(&limit, "limit", runlog.DefaultListLimit, "Max runs to list")
	cmd.Flags().BoolVar(&stats, "stats", false, "Show per-method aggregates")
	return cmd
}

var runHeaders = []string{"ID", "CREATED", "SCENARIO", "METHOD", "SIZE", "STEPS", "VISITED", "DURATION"}

func runRow(r runlog.Run) []string {
	steps := "-"
	if r.Steps > 0 {
		steps = fmt.Sprint(r.Steps)
	}
	return []string{
		r.ID,
		r.CreatedAt.Local().Format(time.DateTime),
		r.Scenario,
		r.Method.String(),
		fmt.Sprintf("%dx%d", r.Height, r.Width),
		steps,
		fmt.Sprint(r.Visited),
		r.Duration.String(),
	}
}
