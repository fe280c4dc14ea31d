package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleSolve solves a small maze and prints the moves taken.
func ExampleSolve() {
	g, m, err := grid.Parse(`
S.#
#..
#.G`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res := bfs.Solve(g, m.Start, m.Goal)
	moves, _ := grid.Directions(res.Path)
	fmt.Println(res.Steps, moves)
	// Output:
	// 5 [right down down right]
}
