package nim_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/nim"
)

// ExampleBestMove asks the maximizer for a move on piles 1 and 2.
func ExampleBestMove() {
	s, err := nim.NewState([]int{1, 2}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := nim.BestMove(s)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Move, res.Value)
	// Output:
	// pile 1: -2 1
}
