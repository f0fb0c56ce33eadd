// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge, attribute bags, Graph and the error kinds shared by every
// lvmesh package.

package core

import (
	"errors"
	"sync"
)

// Error kinds. Every package wraps these with method context; callers branch
// with errors.Is.
var (
	// ErrNotFound indicates a referenced node (or edge) does not exist.
	ErrNotFound = errors.New("core: not found")

	// ErrNoPath indicates no route exists between two present nodes.
	ErrNoPath = errors.New("core: no path")

	// ErrDisconnected indicates a metric that requires connectivity was
	// requested on a disconnected graph.
	ErrDisconnected = errors.New("core: graph is disconnected")

	// ErrInvalidConfiguration indicates parameters that cannot be satisfied,
	// e.g. a minimum degree unattainable for the node count.
	ErrInvalidConfiguration = errors.New("core: invalid configuration")
)

// Validation sentinels for store mutations.
var (
	// ErrEmptyID indicates a zero-length node ID.
	ErrEmptyID = errors.New("core: node ID is empty")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadLatency indicates a negative, NaN or infinite latency.
	ErrBadLatency = errors.New("core: latency must be finite and non-negative")
)

// NodeAttrs is the typed attribute bag of a node. Location and Role are the
// recognized fields; anything else goes to Extra.
type NodeAttrs struct {
	Location string            `yaml:"location,omitempty" json:"location,omitempty"`
	Role     string            `yaml:"role,omitempty" json:"role,omitempty"`
	Extra    map[string]string `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// EdgeAttrs is the typed attribute bag of an edge.
// Latency is the routing weight. Bandwidth 0 means unspecified.
type EdgeAttrs struct {
	Latency   float64           `yaml:"latency" json:"latency"`
	Bandwidth float64           `yaml:"bandwidth,omitempty" json:"bandwidth,omitempty"`
	Extra     map[string]string `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// Node is a value copy of a stored node.
type Node struct {
	ID    string
	Attrs NodeAttrs
}

// Edge is a value copy of a stored undirected edge.
//
// A and B are the endpoints in the order the edge was first added; HasEdge
// and Edge treat the pair as unordered.
type Edge struct {
	// ID is the monotonic edge identifier ("e1", "e2", ...).
	ID string
	A  string
	B  string

	Attrs EdgeAttrs

	seq uint64
}

// Latency is shorthand for e.Attrs.Latency.
func (e Edge) Latency() float64 { return e.Attrs.Latency }

// Other returns the endpoint opposite to id, or "" if id is not an endpoint.
func (e Edge) Other(id string) string {
	switch id {
	case e.A:
		return e.B
	case e.B:
		return e.A
	}
	return ""
}

// slot is the per-node record. adj lists neighbor slots in the order the
// connecting edges were created.
type slot struct {
	node Node
	adj  []int
}

// pair is an unordered pair of slots, normalized lo < hi.
type pair struct{ lo, hi int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{lo: a, hi: b}
}

// Graph is the mutable graph store.
//
// mu guards every field. Individual methods are safe for concurrent use;
// batches of mutations (topology construction, failure injection) must be
// serialized by the owner of the instance.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	index      map[string]int
	slots      []*slot
	edges      map[pair]*Edge
	live       int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
		edges: make(map[pair]*Edge),
	}
}
