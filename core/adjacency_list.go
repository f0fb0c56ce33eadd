// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Dense integer-indexed adjacency view used by routing and analysis.
//
// The view assigns indices 0..n-1 in node enumeration order and lists arcs per
// node in edge insertion order, so algorithms that scan it inherit the store's
// deterministic ordering.

package core

// Arc is one direction of an undirected edge in an Adjacency.
type Arc struct {
	To      int
	Latency float64
}

// Adjacency is an immutable, index-based view of a Reader.
type Adjacency struct {
	// IDs maps index → node ID.
	IDs []string
	// Index maps node ID → index.
	Index map[string]int
	// Arcs[i] lists the neighbors of IDs[i].
	Arcs [][]Arc
	// Edges is the number of undirected edges.
	Edges int
}

// adjacencyProvider is implemented by stores that can build the view under a
// single lock.
type adjacencyProvider interface {
	adjacency() *Adjacency
}

// NewAdjacency builds the dense view of r.
// Complexity: O(V+E).
func NewAdjacency(r Reader) *Adjacency {
	if p, ok := r.(adjacencyProvider); ok {
		return p.adjacency()
	}
	adj := newAdjacency(r.NodeIDs())
	for _, e := range r.Edges() {
		adj.link(e.A, e.B, e.Attrs.Latency)
	}
	return adj
}

// Len returns the number of nodes.
func (a *Adjacency) Len() int { return len(a.IDs) }

// Degree returns the degree of index i.
func (a *Adjacency) Degree(i int) int { return len(a.Arcs[i]) }

func newAdjacency(ids []string) *Adjacency {
	adj := &Adjacency{
		IDs:   ids,
		Index: make(map[string]int, len(ids)),
		Arcs:  make([][]Arc, len(ids)),
	}
	for i, id := range ids {
		adj.Index[id] = i
	}
	return adj
}

func (a *Adjacency) link(u, v string, latency float64) {
	i, ok := a.Index[u]
	if !ok {
		return
	}
	j, ok := a.Index[v]
	if !ok {
		return
	}
	a.Arcs[i] = append(a.Arcs[i], Arc{To: j, Latency: latency})
	a.Arcs[j] = append(a.Arcs[j], Arc{To: i, Latency: latency})
	a.Edges++
}

func (g *Graph) adjacency() *Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, g.live)
	for _, s := range g.slots {
		if s != nil {
			ids = append(ids, s.node.ID)
		}
	}
	adj := newAdjacency(ids)
	for _, e := range g.sortedEdges() {
		adj.link(e.A, e.B, e.Attrs.Latency)
	}
	return adj
}
