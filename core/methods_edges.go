// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order; replacing an edge keeps its slot
//     in that order and its ID.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects a and b, creating either endpoint if it does not exist yet.
// If the pair is already connected its attributes are replaced and created is
// false.
//
// Steps:
//  1. Validate IDs, self-loop and latency (no side effects on failure).
//  2. Lock, ensure both endpoints exist.
//  3. Replace attributes on an existing pair, or create the edge and append
//     each endpoint to the other's adjacency.
//
// Returns ErrEmptyID, ErrSelfLoop or ErrBadLatency.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b string, attrs EdgeAttrs) (bool, error) {
	if a == "" || b == "" {
		return false, ErrEmptyID
	}
	if a == b {
		return false, fmt.Errorf("AddEdge(%q,%q): %w", a, b, ErrSelfLoop)
	}
	if err := checkLatency(attrs.Latency); err != nil {
		return false, fmt.Errorf("AddEdge(%q,%q): %w", a, b, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[a]
	if !ok {
		i = g.insertNode(a, NodeAttrs{})
	}
	j, ok := g.index[b]
	if !ok {
		j = g.insertNode(b, NodeAttrs{})
	}

	key := makePair(i, j)
	if e, exists := g.edges[key]; exists {
		e.Attrs = copyEdgeAttrs(attrs)
		return false, nil
	}

	g.nextEdgeID++
	g.edges[key] = &Edge{
		ID:    nextEdgeID(g.nextEdgeID),
		A:     a,
		B:     b,
		Attrs: copyEdgeAttrs(attrs),
		seq:   g.nextEdgeID,
	}
	g.slots[i].adj = append(g.slots[i].adj, j)
	g.slots[j].adj = append(g.slots[j].adj, i)
	return true, nil
}

// RemoveEdge deletes the edge between a and b. It reports false, without
// error, when either endpoint or the edge itself does not exist.
// Complexity: O(deg(a) + deg(b)).
func (g *Graph) RemoveEdge(a, b string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	i, ok := g.index[a]
	if !ok {
		return false
	}
	j, ok := g.index[b]
	if !ok {
		return false
	}
	key := makePair(i, j)
	if _, exists := g.edges[key]; !exists {
		return false
	}
	delete(g.edges, key)
	g.slots[i].adj = dropSlot(g.slots[i].adj, j)
	g.slots[j].adj = dropSlot(g.slots[j].adj, i)
	return true
}

// HasEdge reports whether a and b are adjacent. It returns ErrNotFound when
// either endpoint does not exist.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, j, err := g.lookupPair("HasEdge", a, b)
	if err != nil {
		return false, err
	}
	_, ok := g.edges[makePair(i, j)]
	return ok, nil
}

// Edge returns a copy of the edge between a and b. ErrNotFound is returned
// when either endpoint is absent or the pair is not connected.
func (g *Graph) Edge(a, b string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, j, err := g.lookupPair("Edge", a, b)
	if err != nil {
		return Edge{}, err
	}
	e, ok := g.edges[makePair(i, j)]
	if !ok {
		return Edge{}, fmt.Errorf("Edge(%q,%q): %w", a, b, ErrNotFound)
	}
	return copyEdge(*e), nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sortedEdges()
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// sortedEdges copies the edge catalog ordered by creation sequence.
// Caller holds at least the read lock.
func (g *Graph) sortedEdges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, copyEdge(*e))
	}
	sort.Slice(out, func(x, y int) bool { return out[x].seq < out[y].seq })
	return out
}

func (g *Graph) lookupPair(method, a, b string) (int, int, error) {
	i, ok := g.index[a]
	if !ok {
		return 0, 0, fmt.Errorf("%s(%q,%q): node %q: %w", method, a, b, a, ErrNotFound)
	}
	j, ok := g.index[b]
	if !ok {
		return 0, 0, fmt.Errorf("%s(%q,%q): node %q: %w", method, a, b, b, ErrNotFound)
	}
	return i, j, nil
}

func checkLatency(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("latency %g: %w", v, ErrBadLatency)
	}
	return nil
}

func copyEdgeAttrs(a EdgeAttrs) EdgeAttrs {
	a.Extra = copyExtra(a.Extra)
	return a
}

func copyEdge(e Edge) Edge {
	e.Attrs = copyEdgeAttrs(e.Attrs)
	return e
}

// nextEdgeID renders sequence number n as "e<n>" without fmt.
func nextEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)
	return string(buf)
}
