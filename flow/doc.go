// SPDX-License-Identifier: MIT
// Package flow computes exact connectivity of a mesh with unit-capacity
// max-flow (Edmonds–Karp: shortest augmenting paths found by BFS).
//
// What it answers:
//
//   - EdgeConnectivity(g, a, b):   how many links must fail to separate a from b.
//   - NodeConnectivity(g, a, b):   how many intermediate routers must fail to separate a from b.
//   - GlobalEdgeConnectivity(g):   λ(G), the smallest link cut of the whole mesh.
//   - GlobalNodeConnectivity(g):   κ(G), the smallest router cut of the whole mesh.
//
// By Menger's theorem these equal the number of edge-disjoint and internally
// node-disjoint paths respectively. The resilience package uses them as the
// exact counterpart of its sampled redundancy and fault-tolerance heuristics.
//
// Complexity (unit network, one pair):
//
//   - Time:   O(k · (V + E)), k = answer ≤ min(deg a, deg b).
//   - Memory: O(V + E) residual arcs (2V vertices after node splitting).
//
// Errors:
//
//	ErrGraphNil        - nil graph.
//	ErrSourceNotFound  - a missing (wraps core.ErrNotFound).
//	ErrSinkNotFound    - b missing (wraps core.ErrNotFound).
//	ErrSameEndpoints   - a == b (wraps core.ErrInvalidConfiguration).
//	context.Canceled / context.DeadlineExceeded - if WithContext is canceled.
package flow
