// Package astar provides the options, node and result types
// for A* search over a grid.Grid.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownHeuristic is returned by HeuristicByName for an unregistered name.
var ErrUnknownHeuristic = errors.New("astar: unknown heuristic")

// NotFound is the Steps value of a search that exhausted its frontier.
const NotFound = -1

// Heuristic estimates the remaining cost from cell to goal. It must be
// non-negative; admissibility (never overestimating) is the caller's choice.
type Heuristic func(goal, cell grid.Cell) float64

// Node is one candidate position reached during search.
// Parent is nil for the start node; parents form a tree used only for
// backtracking.
type Node struct {
	Cell   grid.Cell
	G      int     // steps from start
	H      float64 // heuristic estimate to goal
	Parent *Node
}

// F returns the node priority g + h.
func (n Node) F() float64 { return float64(n.G) + n.H }

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the heuristic and callbacks of a search.
type Options struct {
	// Heuristic ranks frontier nodes. Default: Euclidean.
	Heuristic Heuristic

	// OnPush is called after a node enters the frontier.
	OnPush func(n Node)

	// OnVisit is called after a node is popped and recorded as visited.
	OnVisit func(n Node)
}

// DefaultOptions returns Options with the Euclidean heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		OnPush:    func(Node) {},
		OnVisit:   func(Node) {},
	}
}

// WithHeuristic selects the heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnPush registers a callback run for each node pushed to the frontier.
func WithOnPush(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnVisit registers a callback run for each node popped from the frontier.
func WithOnVisit(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Steps: number of cells in Path, or NotFound.
//   - Path: start → goal inclusive; empty when not found.
//   - Visited: every popped cell, in pop order.
type Result struct {
	Steps   int
	Path    []grid.Cell
	Visited []grid.Cell
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool { return r.Steps != NotFound }

// Snapshot describes one Stepper step.
type Snapshot struct {
	// Current is the node popped by this step.
	Current Node
	// Visited is the number of cells popped so far, Current included.
	Visited int
	// Frontier lists the cells still queued after this step, in heap order.
	Frontier []grid.Cell
	// Done is true when this step ended the search; Result is then final.
	Done   bool
	Result Result
}
