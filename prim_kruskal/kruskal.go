// SPDX-License-Identifier: MIT
//
// File: kruskal.go
// Role: Kruskal's minimum-latency spanning tree over a core.Reader.

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvmesh/core"
)

// Kruskal computes the minimum-latency spanning tree of g. It uses a
// disjoint-set with path compression and union by rank.
//
// Error Conditions:
//   - ErrGraphNil          : g is nil.
//   - core.ErrDisconnected : g is empty, or has more than one component.
//
// Steps:
//  1. Validate; a single router yields an empty tree.
//  2. Stable-sort links by latency so equal latencies keep insertion order.
//  3. Take each link whose endpoints are in different sets until V-1 links.
//  4. Fewer than V-1 links means g is disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g core.Reader) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return nil, 0, disconnected("Kruskal", 0, 0)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Latency() < edges[j].Latency()
	})

	parent := make(map[string]string, n)
	rank := make(map[string]int, n)
	for _, id := range ids {
		parent[id] = id
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}

	union := func(u, v string) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		return true
	}

	var (
		tree  = make([]core.Edge, 0, n-1)
		total float64
	)
	for _, e := range edges {
		if !union(e.A, e.B) {
			continue
		}
		tree = append(tree, e)
		total += e.Latency()
		if len(tree) == n-1 {
			break
		}
	}

	if len(tree) < n-1 {
		return nil, 0, disconnected("Kruskal", largest(ids, find), n)
	}
	return tree, total, nil
}

// largest returns the size of the biggest disjoint set.
func largest(ids []string, find func(string) string) int {
	sizes := make(map[string]int, len(ids))
	best := 0
	for _, id := range ids {
		r := find(id)
		sizes[r]++
		best = max(best, sizes[r])
	}
	return best
}
