// Package core provides the in-memory graph store every other lvmesh package
// operates on: a thread-safe, simple, undirected, latency-weighted Graph.
//
// The Graph G = (V,E) keeps these invariants at all times:
//
//   - no self-loops (AddEdge(v,v) → ErrSelfLoop)
//   - at most one edge per unordered pair (a second AddEdge replaces attributes)
//   - latencies are finite and non-negative (otherwise ErrBadLatency)
//
// Storage:
//
//	index  map[string]int   // node ID → slot
//	slots  []*slot          // slot → node record (nil once removed)
//	edges  map[pair]*Edge   // unordered slot pair → edge
//
// Slots are monotonic and never reused until Clear, so Nodes(), NodeIDs()
// and Edges() enumerate in the order construction left them (insertion
// order), and Neighbors(id) follows edge insertion order for that node.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id, attrs) (created bool, err error) // O(1); merges attrs on re-add
//	RemoveNode(id) bool                          // O(deg(v)²); false = no-op
//
//	// Edge lifecycle
//	AddEdge(a, b, attrs) (created bool, err error) // O(1); creates missing endpoints
//	RemoveEdge(a, b) bool                          // O(deg); false = no-op
//
//	// Query (ErrNotFound when a referenced node is absent)
//	HasEdge(a, b) (bool, error)
//	Degree(id) (int, error)
//	Neighbors(id) ([]string, error)
//	Node(id) / Edge(a, b)
//	Nodes() / NodeIDs() / Edges()
//
//	// Copies
//	Clone() *Graph          // deep copy, same IDs and order
//	Snapshot() *Snapshot    // immutable point-in-time copy (Reader only)
//	Without(ids...) *Graph  // induced subgraph minus ids
//
// Algorithms accept the Reader interface and convert it once into a dense
// Adjacency (indices 0..n-1) so inner loops never hash node IDs.
//
// Errors:
//
//	ErrNotFound             – referenced node (or edge, for Edge) absent
//	ErrNoPath               – no route between two present nodes
//	ErrDisconnected         – metric requires a connected graph
//	ErrInvalidConfiguration – parameters cannot be satisfied
//	ErrEmptyID              – zero-length node ID
//	ErrSelfLoop             – edge endpoints are equal
//	ErrBadLatency           – negative, NaN or infinite latency
package core
