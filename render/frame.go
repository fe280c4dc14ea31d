package render

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Frame is one picture of the search: a row-major State per cell.
type Frame struct {
	Height, Width int
	Cells         []State
	Start, Goal   grid.Cell
	// Index is the frame number within its Animation.
	Index int
}

// At returns the state of c, or Empty when c is out of bounds.
func (f Frame) At(c grid.Cell) State {
	if c.Row < 0 || c.Row >= f.Height || c.Col < 0 || c.Col >= f.Width {
		return Empty
	}
	return f.Cells[c.Row*f.Width+c.Col]
}

func (f Frame) set(c grid.Cell, s State) {
	if c.Row < 0 || c.Row >= f.Height || c.Col < 0 || c.Col >= f.Width {
		return
	}
	f.Cells[c.Row*f.Width+c.Col] = s
}

// Count returns the number of cells in state s.
func (f Frame) Count(s State) int {
	n := 0
	for _, v := range f.Cells {
		if v == s {
			n++
		}
	}
	return n
}

// Animation replays a search: frame i < len(Visited) shows the first i+1
// visited cells, then TailFrames frames overlay the path.
type Animation struct {
	g           *grid.Grid
	start, goal grid.Cell
	visited     []grid.Cell
	path        []grid.Cell
	frontiers   [][]grid.Cell // optional, one per visit
}

// NewAnimation builds an animation from a finished search.
func NewAnimation(g *grid.Grid, start, goal grid.Cell, visited, path []grid.Cell) *Animation {
	return &Animation{g: g, start: start, goal: goal, visited: visited, path: path}
}

// Record runs an A* search step by step and keeps the frontier of every
// step, so frames can also show queued cells.
func Record(g *grid.Grid, start, goal grid.Cell, opts ...astar.Option) (*Animation, astar.Result) {
	s := astar.NewStepper(g, start, goal, opts...)
	var frontiers [][]grid.Cell
	for {
		snap, ok := s.Step()
		if !ok {
			break
		}
		frontiers = append(frontiers, snap.Frontier)
	}
	res := s.Result()
	a := NewAnimation(g, start, goal, res.Visited, res.Path)
	a.frontiers = frontiers
	return a, res
}

// Len returns the number of frames.
func (a *Animation) Len() int { return len(a.visited) + TailFrames }

// Visits returns how many frames reveal visited cells before the tail.
func (a *Animation) Visits() int { return len(a.visited) }

// PathLen returns the number of cells on the final route.
func (a *Animation) PathLen() int { return len(a.path) }

// Frame renders frame i; i is clamped to [0, Len()-1].
func (a *Animation) Frame(i int) Frame {
	if i < 0 {
		i = 0
	}
	if last := a.Len() - 1; i > last {
		i = last
	}

	h, w := a.g.Height(), a.g.Width()
	f := Frame{Height: h, Width: w, Cells: make([]State, h*w), Start: a.start, Goal: a.goal, Index: i}

	// 1) Static walls.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if a.g.Blocked(grid.Cell{Row: r, Col: c}) {
				f.Cells[r*w+c] = Wall
			}
		}
	}

	// 2) Frontier of the current step, under the visited overlay.
	shown := min(i+1, len(a.visited))
	if i < len(a.visited) && i < len(a.frontiers) {
		for _, c := range a.frontiers[i] {
			f.set(c, Frontier)
		}
	}

	// 3) Visited prefix; the whole trace once in the tail.
	for _, c := range a.visited[:shown] {
		f.set(c, Visited)
	}

	// 4) Path overlay in the tail frames.
	if i >= len(a.visited) {
		for _, c := range a.path {
			f.set(c, Path)
		}
	}

	// 5) Endpoints always win.
	f.set(a.start, Endpoint)
	f.set(a.goal, Endpoint)
	return f
}
