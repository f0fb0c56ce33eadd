// SPDX-License-Identifier: MIT

// Package prim_kruskal computes the latency backbone of a mesh: the minimum
// spanning tree whose links keep every router reachable at the lowest total
// latency.
//
// What & Why
//
//   - The backbone is the cheapest set of V-1 links that still connects the
//     mesh. Every other link is a spare that buys redundancy.
//   - Comparing total mesh latency to backbone latency shows how much the
//     redundant links cost, and the spare count (E - V + 1) is the number of
//     independent cycles in the mesh.
//
// Algorithms Provided
//
//   - Kruskal(g core.Reader) ([]core.Edge, float64, error)
//     Stable sort of all links by latency plus union-find.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim(g core.Reader, root string) ([]core.Edge, float64, error)
//     Grows a tree from root with a min-heap of candidate links.
//     Time O(E log E), space O(V + E).
//
//   - Compute(g, opts...) dispatches on MSTOptions.Method (Kruskal by default).
//
// Both algorithms return the same total latency on a connected mesh. With
// distinct latencies they return the same link set.
//
// Error Conditions
//
//   - ErrGraphNil: g is nil.
//   - ErrEmptyRoot, core.ErrNotFound: Prim was given no root or an unknown root.
//   - core.ErrDisconnected: the graph is empty or has more than one component.
//   - ErrUnknownMethod: Compute was given an unknown method.
//
// Determinism
//
// Links are scanned in insertion order and ties on latency go to the link
// added first, so repeated runs on the same graph return the same tree.
package prim_kruskal
