// SPDX-License-Identifier: MIT
//
// File: reach.go
// Role: Hop-layered reachability from one router over a (possibly failed) mesh.

package resilience

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/failure"
)

// Reach reports which routers one router can still talk to.
type Reach struct {
	From string `json:"from" yaml:"from"`
	// Layers[h] lists routers first reached in h hops; Layers[0] is From.
	Layers [][]string `json:"layers" yaml:"layers"`
	// Cut lists the routers of g that From cannot reach within the hop
	// limit, in g's enumeration order.
	Cut []string `json:"cut" yaml:"cut"`
}

// Reached counts routers in Layers, From included.
func (r Reach) Reached() int {
	n := 0
	for _, l := range r.Layers {
		n += len(l)
	}
	return n
}

// Reachability walks g from router from, stopping after maxHops layers
// (0 means no limit). ctx is checked between layers.
// A missing router wraps core.ErrNotFound; a negative maxHops wraps
// bfs.ErrOptionViolation.
func Reachability(ctx context.Context, g core.Reader, from string, maxHops int) (Reach, error) {
	res, err := bfs.Walk(g, from, bfs.WithContext(ctx), bfs.WithMaxHops(maxHops))
	if err != nil {
		return Reach{}, fmt.Errorf("Reachability(%q): %w", from, err)
	}
	r := Reach{From: from, Layers: res.Layers, Cut: []string{}}
	for _, id := range g.NodeIDs() {
		if _, ok := res.Hops(id); !ok {
			r.Cut = append(r.Cut, id)
		}
	}
	return r, nil
}

// SimulationReachability is Reachability over a simulator's current view.
func SimulationReachability(ctx context.Context, sim *failure.Simulator, from string, maxHops int) (Reach, error) {
	return Reachability(ctx, sim.View(), from, maxHops)
}
