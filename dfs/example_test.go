// SPDX-License-Identifier: MIT
package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/dfs"
)

// ExampleAllSimplePaths lists the alternative routes across a square.
func ExampleAllSimplePaths() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.EdgeAttrs{Latency: 1})
	_, _ = g.AddEdge("B", "D", core.EdgeAttrs{Latency: 1})
	_, _ = g.AddEdge("A", "C", core.EdgeAttrs{Latency: 2})
	_, _ = g.AddEdge("C", "D", core.EdgeAttrs{Latency: 2})

	paths, err := dfs.AllSimplePaths(g, "A", "D", 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p.Nodes, p.Latency)
	}

	// Output:
	// [A B D] 2
	// [A C D] 4
}
