// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Layer-by-layer breadth-first walk over a core.Reader.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// Walk explores g from start one hop layer at a time.
//
// Steps:
//  1. Validate g, options and start.
//  2. Emit the current frontier as a layer; stop at the hop limit.
//  3. Build the next frontier from unseen neighbors, scanning the frontier
//     in order and each router's neighbors in link insertion order.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrStartNotFound, or the context
// error when cancelled between layers.
// Complexity: O(V+E).
func Walk(g core.Reader, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("Walk(%q): %w", start, ErrStartNotFound)
	}

	res := &Result{
		Start:  start,
		Parent: make(map[string]string),
		hops:   map[string]int{start: 0},
	}
	for frontier := []string{start}; len(frontier) > 0; {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		res.Layers = append(res.Layers, frontier)
		hop := len(res.Layers)
		if o.maxHops > 0 && hop > o.maxHops {
			break
		}
		var next []string
		for _, u := range frontier {
			nbrs, err := g.Neighbors(u)
			if err != nil {
				return nil, fmt.Errorf("Walk: neighbors of %q: %w", u, err)
			}
			for _, v := range nbrs {
				if _, seen := res.hops[v]; seen {
					continue
				}
				res.hops[v] = hop
				res.Parent[v] = u
				next = append(next, v)
			}
		}
		frontier = next
	}
	return res, nil
}
