package bfs

import "github.com/katalvlaran/gridpath/grid"

// queueItem pairs a cell with its depth and its parent index in the
// walker's node list (-1 for the start).
type queueItem struct {
	cell   grid.Cell
	depth  int
	parent int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g       *grid.Grid
	goal    grid.Cell
	opts    Options
	nodes   []queueItem // every enqueued item; queue is a window into it
	head    int
	inQueue map[grid.Cell]bool
	visited map[grid.Cell]bool
	trace   []grid.Cell
}

// Solve runs breadth-first search from start to goal, the uninformed
// counterpart of astar.FindPath with the same result contract.
// Neither endpoint needs to be in bounds or passable; a nil g panics.
//
// Complexity: O(H·W) time and memory.
func Solve(g *grid.Grid, start, goal grid.Cell, opts ...Option) Result {
	if g == nil {
		panic("bfs: nil grid")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	w := &walker{
		g:       g,
		goal:    goal,
		opts:    o,
		inQueue: make(map[grid.Cell]bool),
		visited: make(map[grid.Cell]bool),
	}
	// Seed queue with start (no parent)
	w.enqueue(start, 0, -1)
	return w.loop()
}

// enqueue appends a cell to the queue and fires OnEnqueue.
func (w *walker) enqueue(c grid.Cell, depth, parent int) {
	w.nodes = append(w.nodes, queueItem{cell: c, depth: depth, parent: parent})
	w.inQueue[c] = true
	w.opts.OnEnqueue(c, depth)
}

// loop processes the queue until the goal is dequeued or the queue empties.
func (w *walker) loop() Result {
	for w.head < len(w.nodes) {
		idx := w.head
		item := w.dequeue()
		if item.cell == w.goal {
			path := w.pathTo(idx)
			return Result{Steps: len(path), Path: path, Visited: w.trace}
		}
		w.enqueueNeighbors(idx, item)
	}
	return Result{Steps: NotFound, Path: []grid.Cell{}, Visited: w.trace}
}

// dequeue pops the head item and records it as visited.
func (w *walker) dequeue() queueItem {
	item := w.nodes[w.head]
	w.head++
	delete(w.inQueue, item.cell)
	w.visited[item.cell] = true
	w.trace = append(w.trace, item.cell)
	w.opts.OnVisit(item.cell, item.depth)
	return item
}

// enqueueNeighbors adds each passable neighbor that is neither queued
// nor visited, in Order.
func (w *walker) enqueueNeighbors(idx int, item queueItem) {
	for _, d := range Order {
		nb := item.cell.Step(d)
		if !w.g.Passable(nb) || w.inQueue[nb] || w.visited[nb] {
			continue
		}
		w.enqueue(nb, item.depth+1, idx)
	}
}

// pathTo walks parent indices back to the start and returns start → node.
func (w *walker) pathTo(idx int) []grid.Cell {
	var path []grid.Cell
	for i := idx; i >= 0; i = w.nodes[i].parent {
		path = append(path, w.nodes[i].cell)
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
