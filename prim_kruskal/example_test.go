// SPDX-License-Identifier: MIT
package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/prim_kruskal"
)

// ExampleKruskal finds the backbone of a four-router ring with one chord.
func ExampleKruskal() {
	g := core.NewGraph()
	g.AddEdge("R1", "R2", core.EdgeAttrs{Latency: 4})
	g.AddEdge("R2", "R3", core.EdgeAttrs{Latency: 2})
	g.AddEdge("R3", "R4", core.EdgeAttrs{Latency: 7})
	g.AddEdge("R4", "R1", core.EdgeAttrs{Latency: 3})
	g.AddEdge("R1", "R3", core.EdgeAttrs{Latency: 9})

	tree, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range tree {
		fmt.Printf("%s-%s ", e.A, e.B)
	}
	fmt.Printf("latency=%g spare=%d\n", total, g.EdgeCount()-len(tree))
	// Output: R2-R3 R4-R1 R1-R2 latency=9 spare=2
}

// ExamplePrim grows the same backbone from R3.
func ExamplePrim() {
	g := core.NewGraph()
	g.AddEdge("R1", "R2", core.EdgeAttrs{Latency: 4})
	g.AddEdge("R2", "R3", core.EdgeAttrs{Latency: 2})
	g.AddEdge("R3", "R4", core.EdgeAttrs{Latency: 7})
	g.AddEdge("R4", "R1", core.EdgeAttrs{Latency: 3})
	g.AddEdge("R1", "R3", core.EdgeAttrs{Latency: 9})

	tree, total, _ := prim_kruskal.Prim(g, "R3")
	for _, e := range tree {
		fmt.Printf("%s-%s ", e.A, e.B)
	}
	fmt.Printf("latency=%g\n", total)
	// Output: R2-R3 R1-R2 R4-R1 latency=9
}
