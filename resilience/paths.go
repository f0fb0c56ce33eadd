// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: All-pairs path metrics (diameter, average path length) and the
// redundancy ratio.

package resilience

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/dfs"
	"github.com/katalvlaran/lvmesh/dijkstra"
)

// Diameter returns the largest shortest-path length over all node pairs,
// in hops (default) or latency (WithLatencyWeights). 0 on an empty graph;
// core.ErrDisconnected when some pair is unreachable.
func Diameter(g core.Reader, opts ...Option) (float64, error) {
	st, err := allPairs("Diameter", g, resolve(opts))
	return st.max, err
}

// AveragePathLength returns the mean shortest-path length over all ordered
// pairs of distinct nodes. 0 for graphs with fewer than two nodes;
// core.ErrDisconnected when some pair is unreachable.
func AveragePathLength(g core.Reader, opts ...Option) (float64, error) {
	st, err := allPairs("AveragePathLength", g, resolve(opts))
	if err != nil || st.pairs == 0 {
		return 0, err
	}
	return st.sum / float64(st.pairs), nil
}

type pathStats struct {
	max   float64
	sum   float64
	pairs int
}

// allPairs runs one BFS (or Dijkstra) per source over a shared dense view.
// Complexity: O(V·(V+E)) hops, O(V·(V+E) log V) latency.
func allPairs(method string, g core.Reader, o options) (pathStats, error) {
	var st pathStats
	if g == nil || g.NodeCount() == 0 {
		return st, nil
	}
	adj := core.NewAdjacency(g)
	n := adj.Len()
	for src := 0; src < n; src++ {
		dist := distancesFrom(adj, src, o.weighted)
		for dst, d := range dist {
			if dst == src {
				continue
			}
			if math.IsInf(d, 1) {
				return pathStats{}, fmt.Errorf("%s: %q unreachable from %q: %w",
					method, adj.IDs[dst], adj.IDs[src], core.ErrDisconnected)
			}
			st.max = math.Max(st.max, d)
			st.sum += d
			st.pairs++
		}
	}
	return st, nil
}

func distancesFrom(adj *core.Adjacency, src int, weighted bool) []float64 {
	if weighted {
		return dijkstra.IndexDistances(adj, src)
	}
	hops := bfs.HopDistances(adj, src)
	out := make([]float64, len(hops))
	for i, h := range hops {
		if h == bfs.Unreachable {
			out[i] = math.Inf(1)
			continue
		}
		out[i] = float64(h)
	}
	return out
}

// RedundancyRatio is the mean number of simple paths between sampled pairs:
// each of the first RatioNodes nodes against its next RatioSuccessors list
// successors, with a hop cutoff of the hop diameter plus RatioCutoffSlack.
// It is 0 on empty or disconnected graphs.
func RedundancyRatio(g core.Reader) float64 {
	if g == nil || g.NodeCount() < 2 {
		return 0
	}
	diam, err := Diameter(g)
	if err != nil {
		return 0
	}
	return redundancyRatio(g, int(diam)+RatioCutoffSlack)
}

func redundancyRatio(g core.Reader, cutoff int) float64 {
	ids := g.NodeIDs()
	n := len(ids)
	total, pairs := 0, 0
	for i := 0; i < min(RatioNodes, n); i++ {
		for j := i + 1; j <= i+RatioSuccessors && j < n; j++ {
			paths, err := dfs.AllSimplePaths(g, ids[i], ids[j], cutoff)
			if err != nil {
				continue
			}
			total += len(paths)
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return float64(total) / float64(pairs)
}
