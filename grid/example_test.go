package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// ExampleParse reads a textual maze with start and goal markers.
func ExampleParse() {
	g, m, err := grid.Parse(`
S.#
.#.
..G`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Height(), g.Width(), g.PassableCount())
	fmt.Println(m.Start, m.Goal)
	fmt.Println(g)
	// Output:
	// 3 3 7
	// (0,0) (2,2)
	// ..#
	// .#.
	// ...
}

// ExampleDirections converts a path into moves.
func ExampleDirections() {
	path := []grid.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}
	moves, _ := grid.Directions(path)
	fmt.Println(moves)
	// Output:
	// [down right]
}
