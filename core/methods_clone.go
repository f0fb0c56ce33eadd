// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies and immutable snapshots.
// Determinism:
//   - Clone preserves node order, edge IDs, edge order and the ID counter, so a
//     clone continues numbering edges after the source.

package core

// Clone returns a deep copy of g. Removed slots are compacted away; order,
// edge IDs and the edge ID counter are preserved.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cloneFiltered(nil)
}

// cloneFiltered copies g, skipping node slots for which drop returns true.
// Caller holds at least the read lock.
func (g *Graph) cloneFiltered(drop func(id string) bool) *Graph {
	out := NewGraph()
	out.nextEdgeID = g.nextEdgeID

	remap := make([]int, len(g.slots))
	for i, s := range g.slots {
		remap[i] = -1
		if s == nil || (drop != nil && drop(s.node.ID)) {
			continue
		}
		remap[i] = out.insertNode(s.node.ID, NodeAttrs{})
		out.slots[remap[i]].node = copyNode(s.node)
	}

	// Walk edges in creation order so every adjacency list is rebuilt in the
	// same relative order as the source.
	for _, e := range g.sortedEdges() {
		i, j := remap[g.index[e.A]], remap[g.index[e.B]]
		if i < 0 || j < 0 {
			continue
		}
		ne := e
		out.edges[makePair(i, j)] = &ne
		out.slots[i].adj = append(out.slots[i].adj, j)
		out.slots[j].adj = append(out.slots[j].adj, i)
	}
	return out
}

// Snapshot is an immutable point-in-time copy of a Graph. It exposes only the
// Reader surface, so holders can share it across goroutines freely.
type Snapshot struct {
	g *Graph
}

// Snapshot returns an immutable copy of the current state.
// Complexity: O(V+E).
func (g *Graph) Snapshot() *Snapshot {
	return &Snapshot{g: g.Clone()}
}

// Graph returns a fresh mutable deep copy of the snapshot, e.g. to restore a
// baseline. The snapshot itself is unaffected.
func (s *Snapshot) Graph() *Graph { return s.g.Clone() }

func (s *Snapshot) NodeCount() int                        { return s.g.NodeCount() }
func (s *Snapshot) EdgeCount() int                        { return s.g.EdgeCount() }
func (s *Snapshot) HasNode(id string) bool                { return s.g.HasNode(id) }
func (s *Snapshot) HasEdge(a, b string) (bool, error)     { return s.g.HasEdge(a, b) }
func (s *Snapshot) Node(id string) (Node, error)          { return s.g.Node(id) }
func (s *Snapshot) Edge(a, b string) (Edge, error)        { return s.g.Edge(a, b) }
func (s *Snapshot) Degree(id string) (int, error)         { return s.g.Degree(id) }
func (s *Snapshot) Neighbors(id string) ([]string, error) { return s.g.Neighbors(id) }
func (s *Snapshot) NodeIDs() []string                     { return s.g.NodeIDs() }
func (s *Snapshot) Nodes() []Node                         { return s.g.Nodes() }
func (s *Snapshot) Edges() []Edge                         { return s.g.Edges() }
func (s *Snapshot) Stats() GraphStats                     { return s.g.Stats() }

// adjacency lets NewAdjacency build the dense view from a snapshot without a
// second copy.
func (s *Snapshot) adjacency() *Adjacency { return s.g.adjacency() }
