// Package grid models a rectangular occupancy grid for path search.
//
// What:
//
//   - Grid wraps an immutable H×W array of 0 (open) / 1 (wall) markers.
//   - Cell is a (row, col) coordinate; it may lie outside any grid.
//   - Parse reads a textual maze ('#' wall, '.' open, 'S'/'G' markers).
//   - Reachable and ConnectedComponents flood-fill open regions.
//   - Directions turns a cell path into up/down/left/right moves.
//
// Why:
//
//   - One validated, immutable grid value is shared by every search
//     (astar, bfs) and every collaborator (render, tui, server) without
//     copying or locking.
//
// Complexity:
//
//   - New, Parse, Values, String:          O(H×W).
//   - InBounds, Blocked, Passable:         O(1).
//   - Reachable, ConnectedComponents:      O(H×W) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellValue: a value other than 0 or 1.
//   - ErrBadMazeRune: unknown character in a textual maze.
//   - ErrNotAdjacent: a path passed to Directions is broken.
package grid
