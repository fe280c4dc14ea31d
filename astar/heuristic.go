package astar

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// Euclidean is the straight-line distance. Admissible on a 4-connected grid.
func Euclidean(goal, cell grid.Cell) float64 {
	dr := float64(goal.Row - cell.Row)
	dc := float64(goal.Col - cell.Col)
	return math.Sqrt(dr*dr + dc*dc)
}

// Manhattan is the taxicab distance, the exact cost on an open 4-connected grid.
func Manhattan(goal, cell grid.Cell) float64 {
	return float64(abs(goal.Row-cell.Row) + abs(goal.Col-cell.Col))
}

// Chebyshev is the maximum of the axis distances.
func Chebyshev(goal, cell grid.Cell) float64 {
	return float64(max(abs(goal.Row-cell.Row), abs(goal.Col-cell.Col)))
}

// Zero turns A* into uniform-cost search.
func Zero(_, _ grid.Cell) float64 { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// DefaultHeuristic is the name HeuristicByName resolves for "".
const DefaultHeuristic = "euclidean"

var heuristics = map[string]Heuristic{
	"euclidean": Euclidean,
	"manhattan": Manhattan,
	"chebyshev": Chebyshev,
	"zero":      Zero,
}

// HeuristicByName resolves a registered heuristic; "" means DefaultHeuristic.
func HeuristicByName(name string) (Heuristic, error) {
	if name == "" {
		name = DefaultHeuristic
	}
	h, ok := heuristics[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
	}
	return h, nil
}

// HeuristicNames returns the registered names, sorted.
func HeuristicNames() []string {
	names := make([]string, 0, len(heuristics))
	for n := range heuristics {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
