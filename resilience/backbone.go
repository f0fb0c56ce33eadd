// SPDX-License-Identifier: MIT
//
// File: backbone.go
// Role: Minimum-latency backbone and the spare links around it.

package resilience

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/prim_kruskal"
)

// Backbone is the minimum-latency spanning tree of a mesh.
type Backbone struct {
	// Links are the tree links in the order Kruskal accepted them.
	Links []core.Edge `json:"links" yaml:"links"`
	// Latency is the summed latency of Links.
	Latency float64 `json:"latency" yaml:"latency"`
	// Spare is the number of links outside the tree, E - V + 1.
	Spare int `json:"spare" yaml:"spare"`
}

// LatencyBackbone computes the backbone of g. A single router gives an
// empty backbone; an empty or disconnected graph wraps core.ErrDisconnected
// and a nil graph wraps prim_kruskal.ErrGraphNil.
func LatencyBackbone(g core.Reader) (Backbone, error) {
	links, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return Backbone{}, fmt.Errorf("LatencyBackbone: %w", err)
	}
	return Backbone{Links: links, Latency: total, Spare: g.EdgeCount() - len(links)}, nil
}
