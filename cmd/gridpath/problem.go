package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/solver"
)

// problemFlags select a grid and its endpoints: a scenario argument or a
// --maze file, with --start / --goal overriding markers.
type problemFlags struct {
	maze  string
	start string
	goal  string
}

func (p *problemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.maze, "maze", "", "Maze text file ('#' wall, '.' open, S/G markers)")
	cmd.Flags().StringVar(&p.start, "start", "", "Start cell as row,col")
	cmd.Flags().StringVar(&p.goal, "goal", "", "Goal cell as row,col")
}

// methodFlags select one search method.
type methodFlags struct {
	algorithm string
	heuristic string
}

func (m *methodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&m.algorithm, "algorithm", "", "Search algorithm: astar|bfs (default from the scenario, else astar)")
	cmd.Flags().StringVar(&m.heuristic, "heuristic", "",
		"A* heuristic: "+strings.Join(astar.HeuristicNames(), "|")+" (default "+astar.DefaultHeuristic+")")
}

// method applies the flags over the scenario's preferred method.
func (m methodFlags) method(p problem) (solver.Method, error) {
	out := p.method
	if m.algorithm != "" {
		if m.algorithm != out.Algorithm {
			out.Heuristic = ""
		}
		out.Algorithm = m.algorithm
	}
	if m.heuristic != "" {
		out.Heuristic = m.heuristic
	}
	return solver.Normalize(out)
}

// problem is a resolved grid with endpoints. method is the scenario's
// preferred method, possibly empty.
type problem struct {
	name        string
	g           *grid.Grid
	start, goal grid.Cell
	method      solver.Method
}

// load resolves args (at most one scenario name or file) and p into a
// problem.
func (p problemFlags) load(args []string) (problem, error) {
	var (
		out      problem
		hasStart bool
		hasGoal  bool
	)
	switch {
	case p.maze != "" && len(args) > 0:
		return out, errors.New("give either a scenario or --maze, not both")
	case p.maze != "":
		data, err := os.ReadFile(p.maze)
		if err != nil {
			return out, err
		}
		g, m, err := grid.Parse(string(data))
		if err != nil {
			return out, fmt.Errorf("%s: %w", p.maze, err)
		}
		out.name = strings.TrimSuffix(filepath.Base(p.maze), filepath.Ext(p.maze))
		out.g, out.start, out.goal = g, m.Start, m.Goal
		hasStart, hasGoal = m.HasStart, m.HasGoal
	case len(args) == 1:
		s, err := scenario.Resolve(args[0])
		if err != nil {
			return out, err
		}
		out.name, out.g = s.Name, s.Grid()
		out.start, out.goal = s.Endpoints()
		out.method = solver.Method{Algorithm: s.Algorithm, Heuristic: s.Heuristic}
		hasStart, hasGoal = true, true
	default:
		return out, errors.New("a scenario name, scenario file or --maze is required")
	}

	if p.start != "" {
		c, err := parseCell(p.start)
		if err != nil {
			return out, fmt.Errorf("--start: %w", err)
		}
		out.start, hasStart = c, true
	}
	if p.goal != "" {
		c, err := parseCell(p.goal)
		if err != nil {
			return out, fmt.Errorf("--goal: %w", err)
		}
		out.goal, hasGoal = c, true
	}
	if !hasStart || !hasGoal {
		return out, errors.New("start and goal are required (markers or --start/--goal)")
	}
	return out, nil
}

// parseCell reads "row,col".
func parseCell(s string) (grid.Cell, error) {
	r, c, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("col: %w", err)
	}
	return grid.Cell{Row: row, Col: col}, nil
}

// animate searches p with m and returns the replay. A* runs through a
// recorder so frames carry the frontier.
func animate(p problem, m solver.Method) (*render.Animation, solver.Outcome, error) {
	if m.Algorithm == solver.AStar {
		h, err := astar.HeuristicByName(m.Heuristic)
		if err != nil {
			return nil, solver.Outcome{}, err
		}
		a, res := render.Record(p.g, p.start, p.goal, astar.WithHeuristic(h))
		return a, solver.Outcome{Method: m, Steps: res.Steps, Path: res.Path, Visited: res.Visited}, nil
	}
	o, err := solver.Run(p.g, p.start, p.goal, m)
	if err != nil {
		return nil, o, err
	}
	return render.NewAnimation(p.g, p.start, p.goal, o.Visited, o.Path), o, nil
}
