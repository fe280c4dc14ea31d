package solver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// DefaultMethods returns A* with every registered heuristic, then BFS.
func DefaultMethods() []Method {
	names := astar.HeuristicNames()
	out := make([]Method, 0, len(names)+1)
	for _, h := range names {
		out = append(out, Method{Algorithm: AStar, Heuristic: h})
	}
	return append(out, Method{Algorithm: BFS})
}

// Normalize fills defaults and validates m: an empty algorithm means AStar,
// an empty A* heuristic means astar.DefaultHeuristic, and BFS drops the
// heuristic.
func Normalize(m Method) (Method, error) {
	switch m.Algorithm {
	case "", AStar:
		m.Algorithm = AStar
		if m.Heuristic == "" {
			m.Heuristic = astar.DefaultHeuristic
		}
		if _, err := astar.HeuristicByName(m.Heuristic); err != nil {
			return m, err
		}
	case BFS:
		m.Heuristic = ""
	default:
		return m, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, m.Algorithm)
	}
	return m, nil
}

// Run solves one problem with m.
func Run(g *grid.Grid, start, goal grid.Cell, m Method) (Outcome, error) {
	m, err := Normalize(m)
	if err != nil {
		return Outcome{}, err
	}

	began := time.Now()
	out := Outcome{Method: m}
	switch m.Algorithm {
	case BFS:
		res := bfs.Solve(g, start, goal)
		out.Steps, out.Path, out.Visited = res.Steps, res.Path, res.Visited
	default:
		h, _ := astar.HeuristicByName(m.Heuristic)
		res := astar.FindPath(g, start, goal, astar.WithHeuristic(h))
		out.Steps, out.Path, out.Visited = res.Steps, res.Path, res.Visited
	}
	out.Duration = time.Since(began)
	return out, nil
}

// Compare runs every method concurrently and returns outcomes in the order
// of methods. workers bounds concurrency; workers ≤ 0 means one goroutine
// per method. All methods are validated before any search starts.
// Cancelling ctx stops methods that have not started yet.
func Compare(ctx context.Context, g *grid.Grid, start, goal grid.Cell, methods []Method, workers int) ([]Outcome, error) {
	// 1) Validate up front so a typo does not waste the other searches.
	ms := make([]Method, len(methods))
	for i, m := range methods {
		nm, err := Normalize(m)
		if err != nil {
			return nil, fmt.Errorf("method %d: %w", i, err)
		}
		ms[i] = nm
	}

	// 2) Fan out; each goroutine writes only its own slot.
	out := make([]Outcome, len(ms))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, m := range ms {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := Run(g, start, goal, m)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
