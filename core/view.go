// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (copies with nodes filtered out).
// Concurrency:
//   - Read lock on the source; the result is a fresh graph instance.

package core

// InducedSubgraph returns a copy containing only the nodes in keep and the
// edges with both endpoints kept. IDs in keep that do not exist are ignored.
// Complexity: O(V+E).
func (g *Graph) InducedSubgraph(keep []string) *Graph {
	set := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		set[id] = struct{}{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cloneFiltered(func(id string) bool {
		_, ok := set[id]
		return !ok
	})
}

// Without returns a copy of g with the given nodes (and their incident edges)
// removed. g itself is not mutated.
// Complexity: O(V+E).
func (g *Graph) Without(ids ...string) *Graph {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cloneFiltered(func(id string) bool {
		_, ok := set[id]
		return ok
	})
}

// FromReader materializes any Reader into a new mutable Graph, preserving
// node order, edge order and attributes. Edge IDs are renumbered.
// Complexity: O(V+E).
func FromReader(r Reader) *Graph {
	if s, ok := r.(*Snapshot); ok {
		return s.Graph()
	}
	if g, ok := r.(*Graph); ok {
		return g.Clone()
	}
	out := NewGraph()
	for _, n := range r.Nodes() {
		_, _ = out.AddNode(n.ID, n.Attrs)
	}
	for _, e := range r.Edges() {
		_, _ = out.AddEdge(e.A, e.B, e.Attrs)
	}
	return out
}
