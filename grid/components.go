package grid

// Reachable returns every passable cell reachable from start by cardinal
// moves, in breadth-first discovery order. An out-of-bounds or blocked start
// still seeds the flood, so its passable neighbors are included; the start
// itself is included only when it is passable.
//
// Time:   O(H·W).
// Memory: O(H·W) for the seen set and output.
func (g *Grid) Reachable(start Cell) []Cell {
	seen := make(map[Cell]bool)
	seen[start] = true
	queue := []Cell{start}
	var out []Cell

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if g.Passable(u) {
			out = append(out, u)
		}
		for _, v := range g.Neighbors(u) {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return out
}

// ConnectedComponents finds all contiguous regions of open cells under
// 4-connectivity, scanning row-major. Each component lists its cells in
// breadth-first order from the first cell found.
//
// Time:   O(H·W).
// Memory: O(H·W) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]Cell

	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			i0 := g.index(r, c)
			if g.cells[i0] == Wall || seen[i0] {
				continue
			}
			seen[i0] = true
			queue := []Cell{{Row: r, Col: c}}
			for qi := 0; qi < len(queue); qi++ {
				for _, v := range g.Neighbors(queue[qi]) {
					vi := g.index(v.Row, v.Col)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
