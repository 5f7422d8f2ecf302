package prim_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/prim"
)

// ExampleMST grows the minimum spanning tree of a five-vertex network from vertex 0.
// Each line is (child -- parent, weight) in the order the tree absorbed the child.
func ExampleMST() {
	g, _ := graph.New(5)
	for _, e := range [][3]int64{{0, 1, 2}, {0, 3, 6}, {1, 2, 3}, {1, 3, 8}, {1, 4, 5}, {2, 4, 7}, {3, 4, 9}} {
		_ = g.AddUndirectedEdge(int(e[0]), int(e[1]), e[2])
	}

	edges, total, err := prim.MST(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range edges {
		fmt.Printf("(%d -- %d, %d)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("total:", total)
	// Output:
	// (1 -- 0, 2)
	// (2 -- 1, 3)
	// (4 -- 1, 5)
	// (3 -- 0, 6)
	// total: 16
}
