// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts: idempotent
// mutations, NotFound reads, insertion-order enumeration and copy isolation.
package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddNodeMergesAttributes checks that re-adding a node updates it in
// place instead of duplicating it.
func TestGraph_AddNodeMergesAttributes(t *testing.T) {
	g := core.NewGraph()

	created, err := g.AddNode("R1", core.NodeAttrs{Location: "Building-A", Extra: map[string]string{"cpu": "8"}})
	require.NoError(t, err)
	require.True(t, created)

	created, err = g.AddNode("R1", core.NodeAttrs{Role: "core", Extra: map[string]string{"rack": "3"}})
	require.NoError(t, err)
	require.False(t, created, "second AddNode must update, not create")
	require.Equal(t, 1, g.NodeCount())

	n, err := g.Node("R1")
	require.NoError(t, err)
	assert.Equal(t, "Building-A", n.Attrs.Location)
	assert.Equal(t, "core", n.Attrs.Role)
	assert.Equal(t, map[string]string{"cpu": "8", "rack": "3"}, n.Attrs.Extra)

	_, err = g.AddNode("", core.NodeAttrs{})
	require.ErrorIs(t, err, core.ErrEmptyID)
}

// TestGraph_AddEdgeValidation covers self-loops, bad latencies and implicit
// endpoint creation.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("A", "A", core.EdgeAttrs{Latency: 1})
	require.ErrorIs(t, err, core.ErrSelfLoop)

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = g.AddEdge("A", "B", core.EdgeAttrs{Latency: bad})
		require.ErrorIs(t, err, core.ErrBadLatency, "latency %v", bad)
	}
	require.Zero(t, g.NodeCount(), "rejected edges must not create endpoints")

	_, err = g.AddEdge("", "B", core.EdgeAttrs{})
	require.ErrorIs(t, err, core.ErrEmptyID)

	created, err := g.AddEdge("A", "B", core.EdgeAttrs{Latency: 4})
	require.NoError(t, err)
	require.True(t, created)
	require.True(t, g.HasNode("A"))
	require.True(t, g.HasNode("B"))
}

// TestGraph_AddEdgeReplacesPair verifies at most one edge per unordered pair.
func TestGraph_AddEdgeReplacesPair(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", core.EdgeAttrs{Latency: 4})
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", core.EdgeAttrs{Latency: 1})
	require.NoError(t, err)

	created, err := g.AddEdge("B", "A", core.EdgeAttrs{Latency: 9, Bandwidth: 1000})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, 2, g.EdgeCount())

	e, err := g.Edge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID, "replacement keeps the edge ID")
	assert.Equal(t, 9.0, e.Latency())
	assert.Equal(t, 1000.0, e.Attrs.Bandwidth)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID, "replacement keeps enumeration position")
	assert.Equal(t, "e2", edges[1].ID)
}

// TestGraph_RemoveIsNoOpWhenAbsent checks removal reports rather than fails.
func TestGraph_RemoveIsNoOpWhenAbsent(t *testing.T) {
	g := core.NewGraph()
	require.False(t, g.RemoveNode("ghost"))
	require.False(t, g.RemoveEdge("ghost", "other"))

	_, err := g.AddEdge("A", "B", core.EdgeAttrs{Latency: 1})
	require.NoError(t, err)
	_, err = g.AddNode("C", core.NodeAttrs{})
	require.NoError(t, err)

	require.False(t, g.RemoveEdge("A", "C"), "no edge between A and C")
	require.True(t, g.RemoveEdge("B", "A"))
	require.False(t, g.RemoveEdge("A", "B"), "second removal is a no-op")
	require.Zero(t, g.EdgeCount())
}

// TestGraph_RemoveNodeDropsIncidentEdges checks neighbors and degrees after a
// node removal.
func TestGraph_RemoveNodeDropsIncidentEdges(t *testing.T) {
	g := square(t)

	require.True(t, g.RemoveNode("B"))
	require.False(t, g.HasNode("B"))
	require.Equal(t, 2, g.EdgeCount())

	for _, id := range g.NodeIDs() {
		nbrs, err := g.Neighbors(id)
		require.NoError(t, err)
		assert.NotContains(t, nbrs, "B")
	}
	for _, e := range g.Edges() {
		assert.NotEqual(t, "B", e.A)
		assert.NotEqual(t, "B", e.B)
	}

	_, err := g.Degree("B")
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = g.Neighbors("B")
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = g.HasEdge("A", "B")
	require.ErrorIs(t, err, core.ErrNotFound)
}

// TestGraph_InsertionOrder anchors the enumeration-order contract.
func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"Zulu", "Alpha", "Mike"} {
		_, err := g.AddNode(id, core.NodeAttrs{})
		require.NoError(t, err)
	}
	_, _ = g.AddEdge("Mike", "Zulu", core.EdgeAttrs{Latency: 1})
	_, _ = g.AddEdge("Mike", "Alpha", core.EdgeAttrs{Latency: 2})
	_, _ = g.AddEdge("Kilo", "Mike", core.EdgeAttrs{Latency: 3})

	assert.Equal(t, []string{"Zulu", "Alpha", "Mike", "Kilo"}, g.NodeIDs())

	nbrs, err := g.Neighbors("Mike")
	require.NoError(t, err)
	assert.Equal(t, []string{"Zulu", "Alpha", "Kilo"}, nbrs)

	deg, err := g.Degree("Mike")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	// A removed and re-added node moves to the end.
	require.True(t, g.RemoveNode("Zulu"))
	_, _ = g.AddNode("Zulu", core.NodeAttrs{})
	assert.Equal(t, []string{"Alpha", "Mike", "Kilo", "Zulu"}, g.NodeIDs())
}

// TestGraph_CloneAndSnapshotIsolation checks that copies do not share state.
func TestGraph_CloneAndSnapshotIsolation(t *testing.T) {
	g := square(t)
	_, _ = g.AddNode("A", core.NodeAttrs{Extra: map[string]string{"k": "v"}})

	snap := g.Snapshot()
	clone := g.Clone()

	require.True(t, g.RemoveNode("A"))
	_, err := g.AddEdge("B", "D", core.EdgeAttrs{Latency: 7})
	require.NoError(t, err)

	require.True(t, snap.HasNode("A"))
	require.Equal(t, 4, snap.EdgeCount())
	require.True(t, clone.HasNode("A"))
	require.Equal(t, 4, clone.EdgeCount())

	n, err := snap.Node("A")
	require.NoError(t, err)
	n.Attrs.Extra["k"] = "mutated"
	n2, _ := snap.Node("A")
	assert.Equal(t, "v", n2.Attrs.Extra["k"], "returned nodes are copies")

	// Clones continue the edge counter.
	_, err = clone.AddEdge("A", "C", core.EdgeAttrs{Latency: 1})
	require.NoError(t, err)
	e, err := clone.Edge("C", "A")
	require.NoError(t, err)
	assert.Equal(t, "e5", e.ID)
}

// TestGraph_Without leaves the source untouched.
func TestGraph_Without(t *testing.T) {
	g := square(t)
	sub := g.Without("A")
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, []string{"B", "C", "D"}, sub.NodeIDs())
	require.Equal(t, 2, sub.EdgeCount())

	ind := g.InducedSubgraph([]string{"A", "B", "missing"})
	require.Equal(t, []string{"A", "B"}, ind.NodeIDs())
	require.Equal(t, 1, ind.EdgeCount())
}

// TestAdjacency_MatchesStore checks the dense view against the store.
func TestAdjacency_MatchesStore(t *testing.T) {
	g := square(t)
	g.RemoveEdge("A", "B")
	adj := core.NewAdjacency(g)
	require.Equal(t, 4, adj.Len())
	require.Equal(t, 3, adj.Edges)
	for i, id := range adj.IDs {
		nbrs, err := g.Neighbors(id)
		require.NoError(t, err)
		require.Len(t, adj.Arcs[i], len(nbrs))
		for k, arc := range adj.Arcs[i] {
			assert.Equal(t, nbrs[k], adj.IDs[arc.To])
		}
	}
	// Snapshot and a generic Reader produce the same view.
	assert.Equal(t, adj, core.NewAdjacency(g.Snapshot()))
}

// TestGraph_Stats covers the summary on empty and populated graphs.
func TestGraph_Stats(t *testing.T) {
	require.Equal(t, core.GraphStats{}, core.NewGraph().Stats())

	g := square(t)
	_, _ = g.AddEdge("A", "C", core.EdgeAttrs{Latency: 10})
	st := g.Stats()
	assert.Equal(t, 4, st.NodeCount)
	assert.Equal(t, 5, st.EdgeCount)
	assert.Equal(t, 2, st.MinDegree)
	assert.Equal(t, 3, st.MaxDegree)
	assert.Equal(t, 20.0, st.TotalLatency)
}

func TestGraph_ClearResetsCounter(t *testing.T) {
	g := square(t)
	g.Clear()
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
	_, _ = g.AddEdge("X", "Y", core.EdgeAttrs{})
	e, err := g.Edge("X", "Y")
	require.NoError(t, err)
	require.Equal(t, "e1", e.ID)

	_, err = g.Edge("X", "Z")
	require.True(t, errors.Is(err, core.ErrNotFound))
}

// square builds A-B-C-D-A with latencies 1,2,3,4.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(p[0], p[1], core.EdgeAttrs{Latency: float64(i + 1)})
		require.NoError(t, err)
	}
	return g
}
