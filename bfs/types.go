// Package bfs provides options and result types
// for breadth-first search over a grid.Grid.
package bfs

import "github.com/katalvlaran/gridpath/grid"

// NotFound is the Steps value of a search that exhausted its queue.
const NotFound = -1

// Order is the neighbor order of the maze solver: up, down, left, right.
var Order = [4]grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks invoked during the search.
type Options struct {
	// OnEnqueue is called when a cell is enqueued, with its depth from start.
	OnEnqueue func(c grid.Cell, depth int)

	// OnVisit is called when a cell is dequeued and recorded as visited.
	OnVisit func(c grid.Cell, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(grid.Cell, int) {},
		OnVisit:   func(grid.Cell, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(c grid.Cell, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Steps: number of cells in Path (start included), or NotFound.
//   - Path: start → goal inclusive; empty when not found.
//   - Visited: every dequeued cell, in visit order.
type Result struct {
	Steps   int
	Path    []grid.Cell
	Visited []grid.Cell
}

// Found reports whether the goal was reached.
func (r Result) Found() bool { return r.Steps != NotFound }
