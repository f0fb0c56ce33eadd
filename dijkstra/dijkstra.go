// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/core"
)

// Distances computes the minimum latency from source to every node of g.
//
// Returns:
//
//   - dist: node ID → minimum latency (+Inf if unreachable).
//   - prev: node ID → predecessor on one shortest route; "" for the source
//     and for unreachable nodes.
//   - err:  ErrNilGraph or ErrVertexNotFound.
func Distances(g core.Reader, source string, opts ...Option) (map[string]float64, map[string]string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	adj := core.NewAdjacency(g)
	src, ok := adj.Index[source]
	if !ok {
		return nil, nil, fmt.Errorf("Distances(%q): %w", source, ErrVertexNotFound)
	}

	r := newRunner(adj, resolve(opts))
	r.run(src)

	dist := make(map[string]float64, adj.Len())
	prev := make(map[string]string, adj.Len())
	for i, id := range adj.IDs {
		dist[id] = r.dist[i]
		prev[id] = ""
		if p := r.prev[i]; p >= 0 {
			prev[id] = adj.IDs[p]
		}
	}
	return dist, prev, nil
}

// ShortestPath returns the minimum-latency route from source to target.
// source == target yields the single-node path with zero latency.
//
// Errors: ErrNilGraph, ErrVertexNotFound (wraps core.ErrNotFound) when either
// endpoint is missing, or core.ErrNoPath when target is unreachable.
func ShortestPath(g core.Reader, source, target string, opts ...Option) (core.Path, error) {
	if g == nil {
		return core.Path{}, ErrNilGraph
	}
	adj := core.NewAdjacency(g)
	src, ok := adj.Index[source]
	if !ok {
		return core.Path{}, fmt.Errorf("ShortestPath(%q,%q): source: %w", source, target, ErrVertexNotFound)
	}
	dst, ok := adj.Index[target]
	if !ok {
		return core.Path{}, fmt.Errorf("ShortestPath(%q,%q): target: %w", source, target, ErrVertexNotFound)
	}

	r := newRunner(adj, resolve(opts))
	r.target = dst
	r.run(src)
	if math.IsInf(r.dist[dst], 1) {
		return core.Path{}, fmt.Errorf("ShortestPath(%q,%q): %w", source, target, core.ErrNoPath)
	}
	return core.Path{Nodes: r.pathTo(dst), Latency: r.dist[dst]}, nil
}

// IndexDistances runs Dijkstra over a prepared dense view and returns
// distances indexed like adj.IDs (+Inf if unreachable). Analyzers that sweep
// every source reuse one Adjacency through this entry point.
func IndexDistances(adj *core.Adjacency, src int, opts ...Option) []float64 {
	r := newRunner(adj, resolve(opts))
	r.run(src)
	return r.dist
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     *core.Adjacency
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
	// target, if ≥ 0, stops the run once it is finalized.
	target int
}

func newRunner(adj *core.Adjacency, cfg Options) *runner {
	n := adj.Len()
	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
		target:  -1,
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	return r
}

// run seeds the heap with src and processes it until empty, the target is
// finalized, or MaxDistance is exceeded.
func (r *runner) run(src int) {
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax examines each arc out of u and pushes improved distances.
func (r *runner) relax(u int) {
	for _, arc := range r.adj.Arcs[u] {
		if arc.Latency >= r.options.InfEdgeThreshold {
			continue
		}
		v := arc.To
		newDist := r.dist[u] + arc.Latency
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// pathTo walks predecessors back from dst.
func (r *runner) pathTo(dst int) []string {
	var rev []int
	for cur := dst; cur >= 0; cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	out := make([]string, len(rev))
	for i, idx := range rev {
		out[len(rev)-1-i] = r.adj.IDs[idx]
	}
	return out
}

// nodeItem is a heap entry: a node index and its tentative distance.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by distance, then node index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
