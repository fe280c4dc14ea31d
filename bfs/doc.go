// Package bfs solves grid mazes with breadth-first search.
//
// What
//
//   - Solve(g, start, goal, opts...) → Result{Steps, Path, Visited}, the same
//     contract as astar.FindPath.
//   - FIFO queue, neighbors in Order (up, down, left, right).
//   - A cell is recorded as visited when dequeued; the goal is tested on
//     dequeue. Cells already queued or visited are not enqueued again.
//
// Why
//
//   - Uninformed baseline for comparing heuristics: on a unit-cost grid it
//     finds a shortest path while visiting every cell closer than the goal.
//
// Complexity
//
//   - Time:   O(H·W)   (each cell enqueued at most once)
//   - Memory: O(H·W)   (node list, membership maps, trace)
//
// Options
//
//   - DefaultOptions(): no-op hooks.
//   - WithOnEnqueue(fn): hook after a cell is enqueued.
//   - WithOnVisit(fn):   hook after a cell is dequeued.
//
// Errors
//
//   - None: unreachable, out-of-bounds or walled goals yield NotFound with
//     the full reachable trace. A nil grid panics.
package bfs
