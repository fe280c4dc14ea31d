package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of 0/1 values.
// It deep-copies the input so later mutation by the caller has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadCellValue for
// anything other than Open or Wall.
// Complexity: O(H×W) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, row 0 has %d", ErrNonRectangular, r, len(row), w)
		}
	}

	g := &Grid{height: h, width: w, cells: make([]uint8, h*w)}
	for r, row := range values {
		for c, v := range row {
			switch v {
			case Open:
				g.open++
			case Wall:
				g.cells[g.index(r, c)] = Wall
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadCellValue, v, r, c)
			}
		}
	}
	return g, nil
}

// MustNew is New for fixtures and literals: a malformed grid is a
// programming error and panics.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse reads a textual maze, one row per line:
//
//	'#' or '1'       wall
//	'.', '0' or ' '  open
//	'S' / 'G'        open cell marked as start / goal
//
// Blank lines before the first row and after the last row are ignored.
func Parse(text string) (*Grid, Markers, error) {
	var m Markers
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	values := make([][]int, len(lines))
	for r, line := range lines {
		row := make([]int, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '#', '1':
				row = append(row, Wall)
			case '.', '0', ' ':
				row = append(row, Open)
			case 'S', 's':
				m.Start, m.HasStart = Cell{Row: r, Col: c}, true
				row = append(row, Open)
			case 'G', 'g':
				m.Goal, m.HasGoal = Cell{Row: r, Col: c}, true
				row = append(row, Open)
			default:
				return nil, Markers{}, fmt.Errorf("%w: %q at line %d, column %d", ErrBadMazeRune, ch, r+1, c+1)
			}
		}
		values[r] = row
	}

	g, err := New(values)
	if err != nil {
		return nil, Markers{}, err
	}
	return g, m, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// index maps an in-bounds (row, col) to its row-major offset.
func (g *Grid) index(r, c int) int { return r*g.width + c }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Blocked reports whether c is an in-bounds wall.
func (g *Grid) Blocked(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c.Row, c.Col)] == Wall
}

// Passable reports whether c is an in-bounds open cell.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.cells[g.index(c.Row, c.Col)] == Open
}

// PassableCount returns the number of open cells.
func (g *Grid) PassableCount() int { return g.open }

// Values returns a fresh [][]int copy of the grid.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for r := range out {
		row := make([]int, g.width)
		for c := range row {
			row[c] = int(g.cells[g.index(r, c)])
		}
		out[r] = row
	}
	return out
}

// Neighbors returns the passable in-bounds neighbors of c in ExpansionOrder.
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(ExpansionOrder))
	for _, d := range ExpansionOrder {
		if n := c.Step(d); g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}

// String renders the grid with '#' for walls and '.' for open cells,
// one row per line, no trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.width; c++ {
			if g.cells[g.index(r, c)] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Directions converts a path into the moves that walk it. A path of n cells
// yields n-1 moves; an empty or single-cell path yields none.
// Returns ErrNotAdjacent if two consecutive cells are not cardinal neighbors.
func Directions(path []Cell) ([]Direction, error) {
	if len(path) < 2 {
		return nil, nil
	}
	moves := make([]Direction, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		d, ok := between(path[i-1], path[i])
		if !ok {
			return nil, fmt.Errorf("%w: %v -> %v at index %d", ErrNotAdjacent, path[i-1], path[i], i)
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// between returns the direction leading from a to b when they are adjacent.
func between(a, b Cell) (Direction, bool) {
	for _, d := range [4]Direction{Up, Down, Left, Right} {
		if a.Step(d) == b {
			return d, true
		}
	}
	return 0, false
}
