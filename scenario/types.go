// Package scenario loads named search problems (grid, endpoints, method)
// from YAML and ships a set of built-in mazes.
package scenario

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for scenario loading.
var (
	// ErrNotFound is returned by Builtin for an unknown name.
	ErrNotFound = errors.New("scenario: not found")
	// ErrInvalid wraps every structural problem in a scenario document.
	ErrInvalid = errors.New("scenario: invalid scenario")
)

// Point is a (row, col) pair written in YAML as a two-element flow
// sequence, e.g. "start: [0, 6]".
type Point struct {
	Row, Col int
}

// Cell converts p to a grid.Cell.
func (p Point) Cell() grid.Cell { return grid.Cell{Row: p.Row, Col: p.Col} }

// UnmarshalYAML decodes "[row, col]".
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("%w: line %d: point must be [row, col]: %v", ErrInvalid, value.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: line %d: point must have 2 elements, got %d", ErrInvalid, value.Line, len(pair))
	}
	p.Row, p.Col = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes p as a flow sequence.
func (p Point) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(p.Row)},
			{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(p.Col)},
		},
	}, nil
}

// Scenario is one search problem. Exactly one of Cells and Maze is set.
// Start and Goal may be omitted when Maze carries 'S' / 'G' markers.
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Algorithm   string  `yaml:"algorithm,omitempty"`
	Heuristic   string  `yaml:"heuristic,omitempty"`
	Start       *Point  `yaml:"start,omitempty"`
	Goal        *Point  `yaml:"goal,omitempty"`
	Cells       [][]int `yaml:"grid,omitempty"`
	Maze        string  `yaml:"maze,omitempty"`

	g *grid.Grid // set by resolve
}
