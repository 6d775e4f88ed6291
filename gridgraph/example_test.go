// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/shipfire/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents identifies contiguous passable regions.
// Scenario:
//
//   - 0 = blocked deck, 1 = open deck
//   - two rooms separated by a bulkhead column
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 1},
		{1, 0, 0, 1},
	})

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// components: 2
	// component 0: [(0, 0) (0, 1) (1, 0)]
	// component 1: [(0, 3) (1, 3)]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Connect
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Connect repairs the split deck above by cutting through
// the bulkhead at the cheapest point.
func ExampleGridGraph_Connect() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 1},
		{1, 0, 0, 1},
	})

	opened, _ := gg.Connect()
	fmt.Println("opened:", opened)
	fmt.Println("connected:", gg.Connected())

	// Output:
	// opened: [(0, 2)]
	// connected: true
}
