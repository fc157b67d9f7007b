package grid_test

import (
	"fmt"

	"github.com/katalvlaran/tcg/grid"
)

// ExamplePosition_MoveSeq walks a token from the bottom-left corner and turns it.
func ExamplePosition_MoveSeq() {
	start := grid.At(0, 0, 1)
	path := start.MoveSeq([]grid.Move{grid.Up, grid.Right})
	for _, p := range path {
		fmt.Println(p)
	}
	turned, _ := path[len(path)-1].Turn(grid.TurnClock)
	fmt.Println("turned:", turned)

	// Output:
	// (0,0)@1
	// (0,1)@1
	// (1,1)@1
	// turned: (1,1)@2
}
