// Package astar implements best-first A* search on a 4-connected grid.Grid.
//
// What:
//
//   - FindPath(g, start, goal, opts...) → Result{Steps, Path, Visited}.
//   - Stepper exposes the same search one pop at a time for animation.
//   - Euclidean (default), Manhattan, Chebyshev and Zero heuristics,
//     resolvable by name via HeuristicByName.
//
// Semantics:
//
//   - The frontier is a min-heap on f = g + h; equal f pops in insertion
//     order.
//   - A cell is recorded as visited when popped, and the goal is tested on
//     pop.
//   - Neighbors expand in grid.ExpansionOrder and are skipped when already
//     visited, out of bounds, blocked or already queued. A queued cell keeps
//     its first-discovered parent; there is no cost relaxation.
//   - Membership is keyed on the coordinate alone.
//
// Errors:
//
//   - FindPath has no error return: unreachable goals, out-of-bounds goals,
//     goals on walls and start == goal all map to a defined Result.
//   - ErrUnknownHeuristic from HeuristicByName.
//
// Complexity:
//
//   - Time: O(H·W·log(H·W)); each cell is pushed at most once.
//   - Memory: O(H·W) for nodes, membership maps and the trace.
//
// Options:
//
//   - WithHeuristic(h)  ranking function, default Euclidean.
//   - WithOnPush(fn)    called for each pushed node.
//   - WithOnVisit(fn)   called for each popped node.
package astar
