// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// EdgeConnectivity returns the number of edge-disjoint paths between a and
// b, which equals the size of the minimum edge cut separating them. Every
// link has unit capacity in both directions; latency is ignored.
//
// Errors: ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, ErrSameEndpoints,
// or the context error with the flow found so far.
//
// Complexity: O(λ · (V + E)) where λ ≤ min(deg a, deg b).
func EdgeConnectivity(g core.Reader, a, b string, opts ...Option) (int, error) {
	adj, s, t, err := endpoints("EdgeConnectivity", g, a, b)
	if err != nil {
		return 0, err
	}
	return edgeFlow(resolve(opts), adj, s, t)
}

// NodeConnectivity returns the number of internally node-disjoint paths
// between a and b: the fewest intermediate nodes whose failure separates
// them. A direct link between a and b counts as one path, so adjacent
// nodes are never separated by node failures alone.
//
// Each node v other than a and b is split into v_in → v_out with unit
// capacity; links become v_out → w_in arcs.
//
// Errors: as EdgeConnectivity.
func NodeConnectivity(g core.Reader, a, b string, opts ...Option) (int, error) {
	adj, s, t, err := endpoints("NodeConnectivity", g, a, b)
	if err != nil {
		return 0, err
	}
	return nodeFlow(resolve(opts), adj, s, t)
}

// GlobalEdgeConnectivity returns λ(G), the fewest link failures that
// disconnect g. It is 0 for graphs with fewer than two nodes or already
// disconnected graphs.
//
// λ(G) = min over v ≠ v0 of EdgeConnectivity(v0, v), one flow per node.
func GlobalEdgeConnectivity(g core.Reader, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolve(opts)
	adj := core.NewAdjacency(g)
	n := adj.Len()
	if n < 2 {
		return 0, nil
	}
	best := -1
	for v := 1; v < n; v++ {
		k, err := edgeFlow(o, adj, 0, v)
		if err != nil {
			return 0, err
		}
		if best < 0 || k < best {
			best = k
		}
		if best == 0 {
			break
		}
	}
	return best, nil
}

// GlobalNodeConnectivity returns κ(G), the fewest node failures that
// disconnect g (or reduce it to a single node). A complete graph on n nodes
// has κ = n-1; graphs with fewer than two nodes have κ = 0.
//
// For non-complete graphs κ(G) is the minimum NodeConnectivity over
// non-adjacent pairs.
func GlobalNodeConnectivity(g core.Reader, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := resolve(opts)
	adj := core.NewAdjacency(g)
	n := adj.Len()
	if n < 2 {
		return 0, nil
	}
	if adj.Edges == n*(n-1)/2 {
		return n - 1, nil
	}

	adjacent := make([]map[int]bool, n)
	for u := range adjacent {
		adjacent[u] = make(map[int]bool, adj.Degree(u))
		for _, a := range adj.Arcs[u] {
			adjacent[u][a.To] = true
		}
	}
	best := n - 1
	for u := 0; u < n && best > 0; u++ {
		for v := u + 1; v < n && best > 0; v++ {
			if adjacent[u][v] {
				continue
			}
			k, err := nodeFlow(o, adj, u, v)
			if err != nil {
				return 0, err
			}
			best = min(best, k)
		}
	}
	return best, nil
}

func endpoints(method string, g core.Reader, a, b string) (*core.Adjacency, int, int, error) {
	if g == nil {
		return nil, 0, 0, ErrGraphNil
	}
	adj := core.NewAdjacency(g)
	s, ok := adj.Index[a]
	if !ok {
		return nil, 0, 0, fmt.Errorf("%s(%q,%q): %w", method, a, b, ErrSourceNotFound)
	}
	t, ok := adj.Index[b]
	if !ok {
		return nil, 0, 0, fmt.Errorf("%s(%q,%q): %w", method, a, b, ErrSinkNotFound)
	}
	if s == t {
		return nil, 0, 0, fmt.Errorf("%s(%q,%q): %w", method, a, b, ErrSameEndpoints)
	}
	return adj, s, t, nil
}

func edgeFlow(o FlowOptions, adj *core.Adjacency, s, t int) (int, error) {
	nw := newNetwork(adj.Len())
	for u, arcs := range adj.Arcs {
		for _, a := range arcs {
			if u < a.To {
				nw.addPair(u, a.To, 1, 1)
			}
		}
	}
	return nw.maxFlow(o.Ctx, s, t, min(adj.Degree(s), adj.Degree(t)))
}

func nodeFlow(o FlowOptions, adj *core.Adjacency, s, t int) (int, error) {
	n := adj.Len()
	in := func(v int) int { return 2 * v }
	out := func(v int) int { return 2*v + 1 }

	nw := newNetwork(2 * n)
	for v := 0; v < n; v++ {
		c := 1
		if v == s || v == t {
			c = n
		}
		nw.addPair(in(v), out(v), c, 0)
	}
	for u, arcs := range adj.Arcs {
		for _, a := range arcs {
			nw.addPair(out(u), in(a.To), 1, 0)
		}
	}
	return nw.maxFlow(o.Ctx, out(s), in(t), min(adj.Degree(s), adj.Degree(t)))
}
