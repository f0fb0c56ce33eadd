// SPDX-License-Identifier: MIT
//
// File: articulation.go
// Role: Exact single points of failure (cut vertices) via Tarjan low-links.

package dfs

import "github.com/katalvlaran/lvmesh/core"

// apWalker holds the low-link bookkeeping for ArticulationPoints.
type apWalker struct {
	adj   *core.Adjacency
	disc  []int
	low   []int
	cut   []bool
	timer int
}

// ArticulationPoints returns the nodes whose removal increases the number of
// connected components, in g's enumeration order. It is the exact
// counterpart of the sampled fault-tolerance estimate.
// Complexity: O(V+E) time, O(V) space.
func ArticulationPoints(g core.Reader) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := core.NewAdjacency(g)
	n := adj.Len()
	w := &apWalker{
		adj:  adj,
		disc: make([]int, n),
		low:  make([]int, n),
		cut:  make([]bool, n),
	}
	for i := range w.disc {
		w.disc[i] = -1
	}
	for root := 0; root < n; root++ {
		if w.disc[root] >= 0 {
			continue
		}
		if children := w.visit(root, -1); children > 1 {
			w.cut[root] = true
		}
	}

	var out []string
	for i, c := range w.cut {
		if c {
			out = append(out, adj.IDs[i])
		}
	}
	return out, nil
}

// visit runs the low-link DFS from u and returns the number of DFS-tree
// children of u.
func (w *apWalker) visit(u, parent int) int {
	w.disc[u] = w.timer
	w.low[u] = w.timer
	w.timer++

	children := 0
	for _, arc := range w.adj.Arcs[u] {
		v := arc.To
		if w.disc[v] < 0 {
			children++
			w.visit(v, u)
			if w.low[v] < w.low[u] {
				w.low[u] = w.low[v]
			}
			// Non-root u separates v's subtree when v cannot climb above u.
			if parent >= 0 && w.low[v] >= w.disc[u] {
				w.cut[u] = true
			}
			continue
		}
		if v != parent && w.disc[v] < w.low[u] {
			w.low[u] = w.disc[v]
		}
	}
	return children
}
