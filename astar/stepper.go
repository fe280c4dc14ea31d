package astar

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Stepper runs an A* search one pop at a time, for animation and
// interactive replay. FindPath is a Stepper driven to completion.
//
// A Stepper is not safe for concurrent use.
type Stepper struct {
	g     *grid.Grid
	goal  grid.Cell
	opts  Options
	open  frontier
	seq   uint64
	inPQ  map[grid.Cell]bool // coordinates currently queued
	seen  map[grid.Cell]bool // coordinates already popped
	trace []grid.Cell
	done  bool
	res   Result
}

// NewStepper prepares a search from start to goal and pushes the start node.
// Neither endpoint needs to be in bounds or passable. Panics if g is nil.
func NewStepper(g *grid.Grid, start, goal grid.Cell, opts ...Option) *Stepper {
	if g == nil {
		panic("astar: nil grid")
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Stepper{
		g:    g,
		goal: goal,
		opts: cfg,
		inPQ: make(map[grid.Cell]bool),
		seen: make(map[grid.Cell]bool),
	}
	s.enqueue(&Node{Cell: start, H: cfg.Heuristic(goal, start)})
	return s
}

// enqueue pushes n and fires OnPush.
func (s *Stepper) enqueue(n *Node) {
	s.open.push(n, s.seq)
	s.seq++
	s.inPQ[n.Cell] = true
	s.opts.OnPush(*n)
}

// Done reports whether the search has terminated.
func (s *Stepper) Done() bool { return s.done }

// Result returns the final result once Done; before that it returns the
// zero Result with the trace so far.
func (s *Stepper) Result() Result {
	if s.done {
		return s.res
	}
	return Result{Steps: NotFound, Visited: append([]grid.Cell(nil), s.trace...)}
}

// Step pops and expands one node. It returns false, with a zero Snapshot,
// once the search is already over.
func (s *Stepper) Step() (Snapshot, bool) {
	if s.done {
		return Snapshot{}, false
	}

	// 1) Pop the minimum-f node and record it.
	cur := s.open.pop()
	delete(s.inPQ, cur.Cell)
	s.seen[cur.Cell] = true
	s.trace = append(s.trace, cur.Cell)
	s.opts.OnVisit(*cur)

	// 2) Goal check happens on pop, never on push.
	if cur.Cell == s.goal {
		s.finish(backtrack(cur))
		return s.snapshot(cur), true
	}

	// 3) Expand in the fixed order. First discovery wins; queued
	//    coordinates are not relaxed.
	for _, d := range grid.ExpansionOrder {
		nb := cur.Cell.Step(d)
		switch {
		case s.seen[nb]:
			continue
		case !s.g.InBounds(nb):
			continue
		case s.g.Blocked(nb):
			continue
		case s.inPQ[nb]:
			continue
		}
		s.enqueue(&Node{
			Cell:   nb,
			G:      cur.G + 1,
			H:      s.opts.Heuristic(s.goal, nb),
			Parent: cur,
		})
	}

	// 4) An empty frontier ends the search without a path.
	if s.open.Len() == 0 {
		s.finish(nil)
	}
	return s.snapshot(cur), true
}

// finish freezes the result. A nil path means not found.
func (s *Stepper) finish(path []grid.Cell) {
	s.done = true
	s.res = Result{Steps: NotFound, Path: []grid.Cell{}, Visited: s.trace}
	if path != nil {
		s.res.Steps = len(path)
		s.res.Path = path
	}
}

func (s *Stepper) snapshot(cur *Node) Snapshot {
	snap := Snapshot{
		Current:  *cur,
		Visited:  len(s.trace),
		Frontier: make([]grid.Cell, len(s.open)),
		Done:     s.done,
	}
	for i, it := range s.open {
		snap.Frontier[i] = it.node.Cell
	}
	if s.done {
		snap.Result = s.res
	}
	return snap
}

// backtrack follows parents from n to the start and returns start → n.
func backtrack(n *Node) []grid.Cell {
	var path []grid.Cell
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur.Cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
