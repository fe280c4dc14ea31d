package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/runlog"
	"github.com/katalvlaran/gridpath/solver"
)

func newSolveCmd() *cobra.Command {
	var (
		pf     problemFlags
		mf     methodFlags
		record bool
		dbPath string
	)
	cmd := &cobra.Command{
		Use:   "solve [scenario]",
		Short: "Find the shortest path with one method",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.load(args)
			if err != nil {
				return err
			}
			m, err := mf.method(p)
			if err != nil {
				return err
			}

			o, err := solver.Run(p.g, p.start, p.goal, m)
			if err != nil {
				return err
			}
			logger.WithFields(logrus.Fields{
				"scenario": p.name,
				"method":   m.String(),
				"steps":    o.Steps,
				"visited":  len(o.Visited),
			}).Info("solved")

			var runID string
			if record {
				run, err := recordRun(cmd.Context(), dbPath, runlog.FromOutcome(p.name, p.g, p.start, p.goal, o))
				if err != nil {
					return err
				}
				runID = run.ID
			}

			out := cmd.OutOrStdout()
			if flagFmt == "json" {
				return formatJSON(out, struct {
					solver.Outcome
					RunID string `json:"run_id,omitempty"`
				}{o, runID})
			}
			formatTable(out, outcomeHeaders, [][]string{outcomeRow(o)})
			if o.Found() {
				fmt.Fprintf(out, "\npath: %s\n", moves(o.Path))
			}
			if runID != "" {
				fmt.Fprintf(out, "run:  %s\n", runID)
			}
			return nil
		},
	}
	pf.register(cmd)
	mf.register(cmd)
	cmd.Flags().BoolVar(&record, "record", false, "Store the run in the history database")
	cmd.Flags().StringVar(&dbPath, "db", envOr("GRIDPATH_DB_PATH", "gridpath.db"), "History database path (env: GRIDPATH_DB_PATH)")
	return cmd
}

func newCompareCmd() *cobra.Command {
	var (
		pf      problemFlags
		methods []string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "compare [scenario]",
		Short: "Run several methods on the same problem",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := pf.load(args)
			if err != nil {
				return err
			}
			ms, err := parseMethods(methods)
			if err != nil {
				return err
			}

			outs, err := solver.Compare(cmd.Context(), p.g, p.start, p.goal, ms, workers)
			if err != nil {
				return err
			}

			if flagFmt == "json" {
				return formatJSON(cmd.OutOrStdout(), outs)
			}
			rows := make([][]string, len(outs))
			for i, o := range outs {
				rows[i] = outcomeRow(o)
			}
			formatTable(cmd.OutOrStdout(), outcomeHeaders, rows)
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringSliceVar(&methods, "methods", nil, "Methods as algorithm[/heuristic], e.g. astar/manhattan,bfs (default: all)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent searches")
	return cmd
}

// parseMethods reads "astar/manhattan" style names; empty means all.
func parseMethods(names []string) ([]solver.Method, error) {
	if len(names) == 0 {
		return solver.DefaultMethods(), nil
	}
	out := make([]solver.Method, 0, len(names))
	for _, n := range names {
		var m solver.Method
		m.Algorithm, m.Heuristic, _ = strings.Cut(n, "/")
		nm, err := solver.Normalize(m)
		if err != nil {
			return nil, err
		}
		out = append(out, nm)
	}
	return out, nil
}

func recordRun(ctx context.Context, dbPath string, r runlog.Run) (runlog.Run, error) {
	store, err := runlog.Open(dbPath)
	if err != nil {
		return r, err
	}
	defer store.Close()

	run, err := store.Record(ctx, r)
	if err != nil {
		return r, err
	}
	logger.WithFields(logrus.Fields{"id": run.ID, "db": dbPath}).Debug("run recorded")
	return run, nil
}
