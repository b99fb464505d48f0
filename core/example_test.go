package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvdraw/core"
)

// ExampleGraph builds the candidate graph of a four-team bracket where one
// pairing is forbidden and therefore never added.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("B", "D", 0)
	_, _ = g.AddEdge("C", "D", 2)

	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount(), g.HasEdge("A", "D"))
	// Output:
	// [A B C D]
	// 4 false
}
