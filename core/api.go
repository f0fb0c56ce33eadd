// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: The Reader/Store contracts consumed by builder, routing, failure and
// resilience packages, plus a cheap Stats summary.

package core

// Reader is the read-only surface of a graph store. *Graph and *Snapshot
// both implement it; algorithms accept it so they can run against either.
//
// Enumerations return value copies in insertion order.
type Reader interface {
	NodeCount() int
	EdgeCount() int
	HasNode(id string) bool
	HasEdge(a, b string) (bool, error)
	Node(id string) (Node, error)
	Edge(a, b string) (Edge, error)
	Degree(id string) (int, error)
	Neighbors(id string) ([]string, error)
	NodeIDs() []string
	Nodes() []Node
	Edges() []Edge
}

// Store is a Reader that can be mutated.
type Store interface {
	Reader
	AddNode(id string, attrs NodeAttrs) (bool, error)
	AddEdge(a, b string, attrs EdgeAttrs) (bool, error)
	RemoveNode(id string) bool
	RemoveEdge(a, b string) bool
	Clear()
}

var (
	_ Store  = (*Graph)(nil)
	_ Reader = (*Snapshot)(nil)
)

// GraphStats is a point-in-time summary of a store.
type GraphStats struct {
	NodeCount    int
	EdgeCount    int
	MinDegree    int
	MaxDegree    int
	TotalLatency float64
}

// Stats computes a GraphStats snapshot in one pass under the read lock.
// MinDegree and MaxDegree are 0 on an empty graph.
// Complexity: O(V+E)
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	st := GraphStats{NodeCount: g.live, EdgeCount: len(g.edges)}
	first := true
	for _, s := range g.slots {
		if s == nil {
			continue
		}
		d := len(s.adj)
		if first || d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
		first = false
	}
	for _, e := range g.edges {
		st.TotalLatency += e.Attrs.Latency
	}
	return st
}
