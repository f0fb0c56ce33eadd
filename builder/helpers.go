// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// helpers.go: shared steps for the mesh constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

// uniqueNames validates names and collapses duplicates, keeping the first
// occurrence so list order still breaks ties.
// Complexity: O(n) time, O(n) space.
func uniqueNames(method string, names []string) ([]string, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for i, id := range names {
		if id == "" {
			return nil, fmt.Errorf("%s: names[%d]: %w", method, i, core.ErrEmptyID)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

// addNodes inserts ids in order. Existing nodes keep their attributes.
func addNodes(method string, g *core.Graph, ids []string) error {
	for _, id := range ids {
		if _, err := g.AddNode(id, core.NodeAttrs{}); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}
	return nil
}

// link adds u–v with the next configured latency and bandwidth.
// created reports whether a new pair was connected.
func link(method string, g *core.Graph, cfg builderConfig, u, v string) (bool, error) {
	lat, bw := cfg.edgeAttrs()
	created, err := g.AddEdge(u, v, core.EdgeAttrs{Latency: lat, Bandwidth: bw})
	if err != nil {
		return false, fmt.Errorf("%s: AddEdge(%s,%s, latency=%g): %w", method, u, v, lat, err)
	}
	return created, nil
}
