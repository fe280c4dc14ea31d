// Package solver selects a search algorithm by name and compares methods.
//
// A Method is an algorithm ("astar" or "bfs") plus, for A*, a heuristic
// name from astar.HeuristicNames. Run executes one method; Compare runs many
// on a shared, immutable grid.Grid using golang.org/x/sync/errgroup and
// returns the outcomes in input order.
//
// Errors:
//
//   - ErrUnknownAlgorithm: algorithm name not recognized.
//   - astar.ErrUnknownHeuristic: heuristic name not recognized.
//   - context errors when Compare is cancelled before a method starts.
package solver
