// SPDX-License-Identifier: MIT
//
// File: prim.go
// Role: Prim's minimum-latency spanning tree grown from a root router.

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// Prim computes the minimum-latency spanning tree of g by growing it from
// root with a min-heap of candidate links.
//
// Error Conditions:
//   - ErrGraphNil          : g is nil.
//   - ErrEmptyRoot         : root is "".
//   - core.ErrNotFound     : root is not in g.
//   - core.ErrDisconnected : g is empty, or some router is unreachable from root.
//
// Ties on latency go to the link inserted first, so the result is stable.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g core.Reader, root string) ([]core.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, 0, disconnected("Prim", 0, 0)
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasNode(root) {
		return nil, 0, fmt.Errorf("Prim(%q): %w", root, core.ErrNotFound)
	}
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// incident[id] lists positions in edges, in insertion order.
	edges := g.Edges()
	incident := make(map[string][]int, n)
	for i, e := range edges {
		incident[e.A] = append(incident[e.A], i)
		incident[e.B] = append(incident[e.B], i)
	}

	visited := make(map[string]bool, n)
	pq := &linkPQ{edges: edges}
	visit := func(id string) {
		visited[id] = true
		for _, i := range incident[id] {
			if !visited[edges[i].Other(id)] {
				heap.Push(pq, i)
			}
		}
	}

	var (
		tree  = make([]core.Edge, 0, n-1)
		total float64
	)
	visit(root)
	for pq.Len() > 0 && len(tree) < n-1 {
		e := edges[heap.Pop(pq).(int)]
		next := e.B
		if visited[next] {
			next = e.A
		}
		if visited[next] {
			continue
		}
		tree = append(tree, e)
		total += e.Latency()
		visit(next)
	}

	if len(tree) < n-1 {
		return nil, 0, disconnected("Prim", len(tree)+1, n)
	}
	return tree, total, nil
}

// linkPQ is a min-heap of positions into edges, ordered by latency then
// position.
type linkPQ struct {
	edges []core.Edge
	items []int
}

func (pq linkPQ) Len() int { return len(pq.items) }

func (pq linkPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if la, lb := pq.edges[a].Latency(), pq.edges[b].Latency(); la != lb {
		return la < lb
	}
	return a < b
}

func (pq linkPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *linkPQ) Push(x any) { pq.items = append(pq.items, x.(int)) }

func (pq *linkPQ) Pop() any {
	old := pq.items
	last := old[len(old)-1]
	pq.items = old[:len(old)-1]
	return last
}
