// Package gridpath finds shortest paths on 4-connected occupancy grids and
// shows how the search got there.
//
// 🚀 What is gridpath?
//
//	A small toolkit around one problem: walk from a start cell to a goal
//	cell on a grid of open (0) and blocked (1) cells, one orthogonal step
//	at a time.
//		• A* with pluggable heuristics (Euclidean, Manhattan, Chebyshev, Zero)
//		• Breadth-first search as the unweighted baseline
//		• Every search returns the path, its length and the visit trace
//		• Traces replay as text, PNG, animated GIF or a terminal player
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/       Grid, Cell and Direction types, maze text parsing, reachability
//	astar/      A* search, heuristics and a step-by-step Stepper
//	bfs/        breadth-first search with the same result shape
//	solver/     named methods, single runs and concurrent comparison
//	scenario/   YAML problem files and the built-in scenarios
//	render/     frames, text, PNG and GIF output
//	tui/        Bubble Tea replay of a search
//	runlog/     SQLite run history
//	metrics/    Prometheus collectors
//	config/     GRIDPATH_* environment settings
//	server/     HTTP and websocket API
//	nim/        misère Nim solved with alpha-beta minimax
//
// The gridpath command in cmd/gridpath wires all of the above together:
//
//	gridpath solve lab --heuristic manhattan
//	gridpath compare big --format json
//	gridpath render small --format gif -o small.gif
//	gridpath play big-inner
//	gridpath serve
//	gridpath nim 3 4 5 --depths 1,3,5
package gridpath
