// SPDX-License-Identifier: MIT
//
// File: fault.go
// Role: Fault-tolerance estimate and the exact connectivity counterparts.

package resilience

import (
	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/dfs"
	"github.com/katalvlaran/lvmesh/flow"
)

// NodeFaultTolerance counts how many of the first FaultToleranceNodes nodes
// can be removed one at a time, each on its own induced-subgraph copy,
// with the remainder staying connected. g is never mutated.
//
// This is an approximate indicator bounded to a prefix of the node list,
// not the minimum vertex cut; use ExactConnectivity for κ(G).
// Graphs with two or fewer nodes score 0.
func NodeFaultTolerance(g core.Reader) int {
	if g == nil || g.NodeCount() <= 2 {
		return 0
	}
	base := core.FromReader(g)
	ids := base.NodeIDs()
	tolerant := 0
	for _, id := range ids[:min(FaultToleranceNodes, len(ids))] {
		if bfs.Connected(base.Without(id)) {
			tolerant++
		}
	}
	return tolerant
}

// SinglePointsOfFailure returns the routers whose individual failure
// disconnects part of the mesh (articulation points), in enumeration order.
func SinglePointsOfFailure(g core.Reader) []string {
	if g == nil {
		return nil
	}
	cut, _ := dfs.ArticulationPoints(g)
	return cut
}

// Connectivity is the exact fault tolerance of a mesh.
type Connectivity struct {
	// Node is κ(G): the fewest router failures that disconnect the mesh.
	Node int
	// Edge is λ(G): the fewest link failures that disconnect the mesh.
	Edge int
}

// ExactConnectivity computes κ(G) and λ(G) with max-flow. It costs
// O(V²) flow runs and is meant for small and medium meshes.
func ExactConnectivity(g core.Reader, opts ...flow.Option) (Connectivity, error) {
	node, err := flow.GlobalNodeConnectivity(g, opts...)
	if err != nil {
		return Connectivity{}, err
	}
	edge, err := flow.GlobalEdgeConnectivity(g, opts...)
	if err != nil {
		return Connectivity{}, err
	}
	return Connectivity{Node: node, Edge: edge}, nil
}
