// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connectivity helpers over the dense core.Adjacency view, used by the
// resilience analyzer after every simulated failure.

package bfs

import "github.com/katalvlaran/lvmesh/core"

// Unreachable marks a node not reached by HopDistances.
const Unreachable = -1

// HopDistances returns the hop count from src to every index of adj, or
// Unreachable. The slice is indexed like adj.IDs.
// Complexity: O(V+E).
func HopDistances(adj *core.Adjacency, src int) []int {
	dist := make([]int, adj.Len())
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[src] = 0
	queue := make([]int, 1, adj.Len())
	queue[0] = src
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, arc := range adj.Arcs[u] {
			if dist[arc.To] == Unreachable {
				dist[arc.To] = dist[u] + 1
				queue = append(queue, arc.To)
			}
		}
	}
	return dist
}

// ComponentLabels assigns each index of adj the number of its connected
// component, numbered from 0 in order of each component's first node.
// It returns the labels and the component count.
// Complexity: O(V+E).
func ComponentLabels(adj *core.Adjacency) ([]int, int) {
	label := make([]int, adj.Len())
	for i := range label {
		label[i] = Unreachable
	}
	count := 0
	queue := make([]int, 0, adj.Len())
	for s := range label {
		if label[s] != Unreachable {
			continue
		}
		label[s] = count
		queue = append(queue[:0], s)
		for head := 0; head < len(queue); head++ {
			for _, arc := range adj.Arcs[queue[head]] {
				if label[arc.To] == Unreachable {
					label[arc.To] = count
					queue = append(queue, arc.To)
				}
			}
		}
		count++
	}
	return label, count
}

// Connected reports whether g is non-empty and every node is reachable from
// every other. An empty graph is not connected.
// Complexity: O(V+E).
func Connected(g core.Reader) bool {
	adj := core.NewAdjacency(g)
	if adj.Len() == 0 {
		return false
	}
	_, count := ComponentLabels(adj)
	return count == 1
}

// Components returns the connected components of g. Components are ordered
// by their first node in g's enumeration order; nodes within a component
// keep that enumeration order too. An empty graph has no components.
// Complexity: O(V+E).
func Components(g core.Reader) [][]string {
	adj := core.NewAdjacency(g)
	label, count := ComponentLabels(adj)
	out := make([][]string, count)
	for i, c := range label {
		out[c] = append(out[c], adj.IDs[i])
	}
	return out
}
