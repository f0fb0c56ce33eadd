// SPDX-License-Identifier: MIT
// Package dfs implements depth-first algorithms on a core.Reader: bounded
// simple-path enumeration for redundancy analysis and articulation points.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// pathWalker encapsulates state during simple-path enumeration.
type pathWalker struct {
	adj    *core.Adjacency
	target int
	cutoff int
	opts   PathOptions

	onPath []bool
	stack  []int
	// prefix[i] is the latency from the source to stack[i].
	prefix []float64
	out    []core.Path
}

// AllSimplePaths enumerates every simple path from s to t with at most cutoff
// hops, in depth-first order following neighbor insertion order. Each path
// carries its total latency.
//
// The cost is exponential in the number of paths, so the cutoff is
// mandatory; WithMaxPaths and WithContext bound it further.
//
// Edge cases:
//   - s == t yields no paths.
//   - cutoff == 0 yields no paths.
//
// Errors: ErrGraphNil, ErrNegativeCutoff (wraps core.ErrInvalidConfiguration),
// core.ErrNotFound for a missing endpoint, ErrOptionViolation, or the context
// error together with the paths found so far.
func AllSimplePaths(g core.Reader, s, t string, cutoff int, opts ...Option) ([]core.Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if cutoff < 0 {
		return nil, fmt.Errorf("AllSimplePaths: cutoff=%d: %w", cutoff, ErrNegativeCutoff)
	}

	adj := core.NewAdjacency(g)
	si, ok := adj.Index[s]
	if !ok {
		return nil, fmt.Errorf("AllSimplePaths: node %q: %w", s, core.ErrNotFound)
	}
	ti, ok := adj.Index[t]
	if !ok {
		return nil, fmt.Errorf("AllSimplePaths: node %q: %w", t, core.ErrNotFound)
	}
	if si == ti || cutoff == 0 {
		return nil, nil
	}

	w := &pathWalker{
		adj:    adj,
		target: ti,
		cutoff: cutoff,
		opts:   o,
		onPath: make([]bool, adj.Len()),
		stack:  make([]int, 0, cutoff+1),
		prefix: make([]float64, 0, cutoff+1),
	}
	w.push(si, 0)
	_, err := w.extend(si)
	return w.out, err
}

// extend explores every arc out of u. It reports done once MaxPaths is
// reached so the recursion can unwind.
func (w *pathWalker) extend(u int) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return true, w.opts.Ctx.Err()
	default:
	}

	hops := len(w.stack) - 1
	for _, arc := range w.adj.Arcs[u] {
		v := arc.To
		if w.onPath[v] {
			continue
		}
		if v == w.target {
			w.emit(arc.Latency)
			if w.opts.MaxPaths > 0 && len(w.out) >= w.opts.MaxPaths {
				return true, nil
			}
			continue
		}
		// v is not the target, so reaching the target through it costs at
		// least two more hops.
		if hops+2 > w.cutoff {
			continue
		}
		w.push(v, arc.Latency)
		done, err := w.extend(v)
		w.pop()
		if done || err != nil {
			return done, err
		}
	}
	return false, nil
}

func (w *pathWalker) push(v int, lat float64) {
	base := 0.0
	if n := len(w.prefix); n > 0 {
		base = w.prefix[n-1]
	}
	w.onPath[v] = true
	w.stack = append(w.stack, v)
	w.prefix = append(w.prefix, base+lat)
}

func (w *pathWalker) pop() {
	last := len(w.stack) - 1
	w.onPath[w.stack[last]] = false
	w.stack = w.stack[:last]
	w.prefix = w.prefix[:last]
}

// emit records the current stack plus the target as a path.
func (w *pathWalker) emit(lastLat float64) {
	nodes := make([]string, len(w.stack)+1)
	for i, idx := range w.stack {
		nodes[i] = w.adj.IDs[idx]
	}
	nodes[len(w.stack)] = w.adj.IDs[w.target]
	w.out = append(w.out, core.Path{Nodes: nodes, Latency: w.prefix[len(w.prefix)-1] + lastLat})
}
