// SPDX-License-Identifier: MIT
//
// File: mesh.go
// Role: Mesh validity: connectivity, minimum degree and the sampled
// redundancy check.

package resilience

import (
	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/dfs"
)

// Sample is the outcome of the redundancy sample.
type Sample struct {
	// Pairs lists the sampled node pairs in check order.
	Pairs [][2]string
	// Redundant counts the pairs with at least two simple paths.
	Redundant int
}

// Passed reports whether enough sampled pairs are redundant: at least
// SamplePassRatio of them and never fewer than one. An empty sample passes.
func (s Sample) Passed() bool {
	if len(s.Pairs) == 0 {
		return true
	}
	need := max(1, SamplePassRatio*float64(len(s.Pairs)))
	return float64(s.Redundant) >= need
}

// IsMeshValid reports whether g is non-empty, connected, has every node at
// degree ≥ minDegree and passes the redundancy sample. Meshes with fewer
// than three nodes skip the sample.
func IsMeshValid(g core.Reader, minDegree int) bool {
	if g == nil || g.NodeCount() == 0 {
		return false
	}
	adj := core.NewAdjacency(g)
	if _, count := bfs.ComponentLabels(adj); count != 1 {
		return false
	}
	for i := range adj.IDs {
		if adj.Degree(i) < minDegree {
			return false
		}
	}
	return redundancySample(g, adj).Passed()
}

// RedundancySample runs the bounded redundancy check on its own: pairs of
// each of the first SampleNodes nodes with its next SampleSuccessors list
// successors, capped at SampleMaxPairs, each counted redundant when at least
// two simple paths of at most NodeCount hops join it.
//
// This is an approximation, not a proof of redundancy.
func RedundancySample(g core.Reader) Sample {
	if g == nil {
		return Sample{}
	}
	return redundancySample(g, core.NewAdjacency(g))
}

func redundancySample(g core.Reader, adj *core.Adjacency) Sample {
	n := adj.Len()
	var s Sample
	if n < 3 {
		return s
	}
	for i := 0; i < min(SampleNodes, n) && len(s.Pairs) < SampleMaxPairs; i++ {
		for j := i + 1; j <= i+SampleSuccessors && j < n && len(s.Pairs) < SampleMaxPairs; j++ {
			s.Pairs = append(s.Pairs, [2]string{adj.IDs[i], adj.IDs[j]})
		}
	}
	for _, p := range s.Pairs {
		paths, err := dfs.AllSimplePaths(g, p[0], p[1], n, dfs.WithMaxPaths(2))
		if err == nil && len(paths) >= 2 {
			s.Redundant++
		}
	}
	return s
}
