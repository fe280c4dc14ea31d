// Package grid defines the occupancy grid, cell coordinates, moves and
// sentinel errors shared by the gridpath search packages.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and path inspection.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadCellValue indicates a cell value other than Open or Wall.
	ErrBadCellValue = errors.New("grid: cell values must be 0 (open) or 1 (wall)")
	// ErrBadMazeRune indicates an unrecognized character in a textual maze.
	ErrBadMazeRune = errors.New("grid: unrecognized maze character")
	// ErrNotAdjacent indicates two consecutive path cells are not one cardinal step apart.
	ErrNotAdjacent = errors.New("grid: path cells are not cardinal neighbors")
)

// Cell markers as they appear in [][]int input.
const (
	Open = 0 // passable
	Wall = 1 // blocked
)

// Cell is a (row, col) coordinate, 0-indexed. It may lie outside any grid;
// bounds are a property of the Grid, not of the coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the neighbor of c in direction d.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	// Up decreases Row.
	Up Direction = iota
	// Down increases Row.
	Down
	// Left decreases Col.
	Left
	// Right increases Col.
	Right
)

// Delta returns the (row, col) offset of d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// String returns the lower-case move name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ExpansionOrder is the neighbor order used by Neighbors and by the A*
// search: (0,+1), (+1,0), (0,-1), (-1,0). Any code that reproduces a
// visited trace depends on this order.
var ExpansionOrder = [4]Direction{Right, Down, Left, Up}

// Markers carries the optional start and goal positions found while parsing
// a textual maze.
type Markers struct {
	Start, Goal       Cell
	HasStart, HasGoal bool
}

// Grid is an immutable H×W occupancy grid. Cells are stored row-major.
// A Grid is safe for concurrent readers.
type Grid struct {
	height, width int
	cells         []uint8
	open          int // number of passable cells
}
