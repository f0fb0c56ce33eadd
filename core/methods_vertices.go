// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes()/NodeIDs() return slot order (insertion order).
//   - Neighbors(id) returns edge insertion order for id.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddNode inserts a node, or merges attrs into an existing one.
//
// Merge rule: non-empty Location/Role overwrite, Extra keys are merged with
// later values winning. created reports whether a new node was inserted.
// Returns ErrEmptyID for an empty id.
// Complexity: O(1) amortized, plus O(len(attrs.Extra)).
func (g *Graph) AddNode(id string, attrs NodeAttrs) (bool, error) {
	if id == "" {
		return false, ErrEmptyID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if i, ok := g.index[id]; ok {
		mergeNodeAttrs(&g.slots[i].node.Attrs, attrs)
		return false, nil
	}
	g.insertNode(id, attrs)
	return true, nil
}

// HasNode reports whether id exists. Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]
	return ok
}

// Node returns a copy of the node with the given id, or ErrNotFound.
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return Node{}, fmt.Errorf("Node(%q): %w", id, ErrNotFound)
	}
	return copyNode(g.slots[i].node), nil
}

// RemoveNode deletes id and every incident edge. It reports false, without
// error, when id does not exist.
// Complexity: O(Σ deg(u)) over the neighbors u of id.
func (g *Graph) RemoveNode(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[id]
	if !ok {
		return false
	}
	s := g.slots[i]
	for _, j := range s.adj {
		delete(g.edges, makePair(i, j))
		g.slots[j].adj = dropSlot(g.slots[j].adj, i)
	}
	g.slots[i] = nil
	delete(g.index, id)
	g.live--
	return true
}

// Degree returns the number of edges incident to id, or ErrNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrNotFound)
	}
	return len(g.slots[i].adj), nil
}

// Neighbors returns the IDs adjacent to id in edge insertion order, or
// ErrNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrNotFound)
	}
	adj := g.slots[i].adj
	out := make([]string, len(adj))
	for k, j := range adj {
		out[k] = g.slots[j].node.ID
	}
	return out, nil
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Node, 0, g.live)
	for _, s := range g.slots {
		if s != nil {
			out = append(out, copyNode(s.node))
		}
	}
	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, g.live)
	for _, s := range g.slots {
		if s != nil {
			out = append(out, s.node.ID)
		}
	}
	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.live
}

// Clear resets the graph to the empty state, including the edge ID counter.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.index = make(map[string]int)
	g.slots = nil
	g.edges = make(map[pair]*Edge)
	g.live = 0
	g.nextEdgeID = 0
}

// insertNode appends a new slot. Caller holds the write lock and has checked
// that id is absent.
func (g *Graph) insertNode(id string, attrs NodeAttrs) int {
	i := len(g.slots)
	n := Node{ID: id}
	mergeNodeAttrs(&n.Attrs, attrs)
	g.slots = append(g.slots, &slot{node: n})
	g.index[id] = i
	g.live++
	return i
}

func mergeNodeAttrs(dst *NodeAttrs, src NodeAttrs) {
	if src.Location != "" {
		dst.Location = src.Location
	}
	if src.Role != "" {
		dst.Role = src.Role
	}
	if len(src.Extra) > 0 {
		if dst.Extra == nil {
			dst.Extra = make(map[string]string, len(src.Extra))
		}
		for k, v := range src.Extra {
			dst.Extra[k] = v
		}
	}
}

func copyNode(n Node) Node {
	n.Attrs.Extra = copyExtra(n.Attrs.Extra)
	return n
}

func copyExtra(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// dropSlot removes the first occurrence of j from adj, preserving order.
func dropSlot(adj []int, j int) []int {
	for k, v := range adj {
		if v == j {
			return append(adj[:k], adj[k+1:]...)
		}
	}
	return adj
}
