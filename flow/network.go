// SPDX-License-Identifier: MIT
//
// File: network.go
// Role: Integer residual network and the Edmonds–Karp augmentation loop.
//
// Arcs are stored per vertex with the index of their reverse arc, so an
// augmentation updates both directions in O(1) per step without hashing.

package flow

import "context"

type arc struct {
	to  int
	rev int
	cap int
}

type network struct {
	arcs [][]arc
}

func newNetwork(n int) *network {
	return &network{arcs: make([][]arc, n)}
}

// addPair inserts u→v with capacity c and v→u with capacity back. An
// undirected unit link is addPair(u, v, 1, 1).
func (nw *network) addPair(u, v, c, back int) {
	nw.arcs[u] = append(nw.arcs[u], arc{to: v, rev: len(nw.arcs[v]), cap: c})
	nw.arcs[v] = append(nw.arcs[v], arc{to: u, rev: len(nw.arcs[u]) - 1, cap: back})
}

// maxFlow pushes shortest augmenting paths from s to t until none remain.
// limit > 0 stops once the flow reaches it.
// Complexity: O(V · E²), O(F · E) for unit networks.
func (nw *network) maxFlow(ctx context.Context, s, t, limit int) (int, error) {
	n := len(nw.arcs)
	// parent[v] = (vertex, arc index) that reached v.
	parentV := make([]int, n)
	parentA := make([]int, n)
	queue := make([]int, 0, n)
	total := 0

	for limit <= 0 || total < limit {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		for i := range parentV {
			parentV[i] = -1
		}
		parentV[s] = s
		queue = append(queue[:0], s)
		for head := 0; head < len(queue) && parentV[t] < 0; head++ {
			u := queue[head]
			for i, a := range nw.arcs[u] {
				if a.cap > 0 && parentV[a.to] < 0 {
					parentV[a.to] = u
					parentA[a.to] = i
					queue = append(queue, a.to)
				}
			}
		}
		if parentV[t] < 0 {
			break
		}

		bottleneck := -1
		for v := t; v != s; v = parentV[v] {
			c := nw.arcs[parentV[v]][parentA[v]].cap
			if bottleneck < 0 || c < bottleneck {
				bottleneck = c
			}
		}
		for v := t; v != s; v = parentV[v] {
			a := &nw.arcs[parentV[v]][parentA[v]]
			a.cap -= bottleneck
			nw.arcs[v][a.rev].cap += bottleneck
		}
		total += bottleneck
	}
	return total, nil
}
