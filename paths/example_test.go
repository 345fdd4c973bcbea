package paths_test

import (
	"fmt"

	"github.com/katalvlaran/netsim/builder"
	"github.com/katalvlaran/netsim/paths"
)

// ExampleAllSimplePaths lists both routes between the ends of a small
// network with a triangle in the middle.
func ExampleAllSimplePaths() {
	g, _ := builder.BuildGraph(nil, builder.FromEdges(
		[2]int{1, 2}, [2]int{2, 6}, [2]int{6, 10}, [2]int{10, 4}, [2]int{10, 2},
	))
	ps, _ := paths.AllSimplePaths(g, 1, 4)
	for _, p := range ps {
		fmt.Println(p)
	}

	// Output:
	// [1, 2, 6, 10, 4]
	// [1, 2, 10, 4]
}

// ExampleEnumerator pulls paths lazily and stops after the first one.
func ExampleEnumerator() {
	g, _ := builder.BuildGraph(nil, builder.Complete(4))
	e, _ := paths.NewEnumerator(g, 0, 3)
	p, ok := e.Next()
	fmt.Println(p, ok, e.Count())

	// Output:
	// [0, 1, 2, 3] true 1
}
