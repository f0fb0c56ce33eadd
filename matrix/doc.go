// SPDX-License-Identifier: MIT

// Package matrix provides a dense row-major float64 matrix and the latency
// matrices of a mesh built on it.
//
//   - Dense: NewDense, At, Set, Clone. Indexers return ErrOutOfRange instead
//     of panicking.
//   - FloydWarshall: in-place all-pairs shortest paths with a fixed k → i → j
//     loop order.
//   - Links / AllPairs: router × router latency matrices of a core.Reader,
//     indexed in the graph's enumeration order.
//
// AllPairs is O(V³) and suits the small meshes the CLI reports on; use
// dijkstra.IndexDistances per source on large sparse meshes.
package matrix
