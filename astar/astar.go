package astar

import "github.com/katalvlaran/gridpath/grid"

// FindPath runs A* from start to goal on g and returns the step count,
// the path and the visited trace.
//
// Every input yields a defined result:
//   - start == goal:             Steps 1, Path [start], one visited cell.
//   - goal unreachable, out of
//     bounds or on a wall:       Steps NotFound, empty Path, Visited holds
//     every passable cell reachable from start.
//
// FindPath never returns an error; a nil g panics.
//
// Complexity: O(H·W·log(H·W)) time, O(H·W) memory.
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) Result {
	s := NewStepper(g, start, goal, opts...)
	for !s.Done() {
		s.Step()
	}
	return s.Result()
}
