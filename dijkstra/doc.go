// SPDX-License-Identifier: MIT
// Package dijkstra provides the routing engine's shortest-path search: the
// minimum total latency route between two nodes of a (possibly
// failure-degraded) mesh.
//
// API reference:
//
//	func ShortestPath(g core.Reader, source, target string, opts ...Option) (core.Path, error)
//	func Distances(g core.Reader, source string, opts ...Option) (map[string]float64, map[string]string, error)
//	func IndexDistances(adj *core.Adjacency, src int, opts ...Option) []float64
//
// Options:
//
//   - WithMaxDistance(x):        nodes farther than x are not explored (x ≥ 0, panics otherwise).
//   - WithInfEdgeThreshold(t):   links with latency ≥ t are impassable (t > 0, panics otherwise).
//
// Errors:
//
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  source or target missing (wraps core.ErrNotFound).
//   - core.ErrNoPath:     target unreachable from source.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Determinism: heap entries with equal distance pop in node index order
// (the store's enumeration order) and a predecessor is only replaced by a
// strictly shorter route, so repeated runs on an unchanged graph return the
// same path.
//
// Thread safety:
//
//   - Each call builds a dense core.Adjacency under a single read lock, so a
//     query never observes a half-applied mutation of a *core.Graph. Run
//     queries against a core.Snapshot to pin the state across several calls.
package dijkstra
