// Package solver dispatches a search to A* or BFS by name and compares
// several methods on the same problem.
package solver

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownAlgorithm is returned for an algorithm name other than
// AStar or BFS.
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// Algorithm names.
const (
	AStar = "astar"
	BFS   = "bfs"
)

// Method names one search configuration. Heuristic is ignored by BFS.
type Method struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Heuristic string `json:"heuristic,omitempty" yaml:"heuristic,omitempty"`
}

// String renders "astar/manhattan" or "bfs".
func (m Method) String() string {
	if m.Algorithm == BFS || m.Heuristic == "" {
		return m.Algorithm
	}
	return m.Algorithm + "/" + m.Heuristic
}

// Outcome is the result of one Method on one problem.
type Outcome struct {
	Method   Method        `json:"method"`
	Steps    int           `json:"steps"`
	Path     []grid.Cell   `json:"path"`
	Visited  []grid.Cell   `json:"visited"`
	Duration time.Duration `json:"duration"`
}

// Found reports whether a path was returned.
func (o Outcome) Found() bool { return o.Steps > 0 }
