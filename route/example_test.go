package route_test

import (
	"fmt"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/route"
)

// ExampleDirect lists the three direct routes from the bottom-left corner
// to (2,1).
func ExampleDirect() {
	start := grid.At(0, 0, 1)
	finish := grid.At(2, 1, 1)
	for r := range route.Direct(start, finish) {
		fmt.Println(r)
	}
	fmt.Println("count:", route.Count(start, finish))

	// Output:
	// (0,0)@1 → (0,1)@1 → (1,1)@1 → (2,1)@1
	// (0,0)@1 → (1,0)@1 → (1,1)@1 → (2,1)@1
	// (0,0)@1 → (1,0)@1 → (2,0)@1 → (2,1)@1
	// count: 3
}
