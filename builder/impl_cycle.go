// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_cycle.go: implementation of Ring(names) constructor.
//
// Contract:
//   - Clears the store first.
//   - At least 3 distinct names (else ErrTooFewNodes); duplicates collapse.
//   - Emits edges in stable order names[i] – names[(i+1)%n]: n edges, every
//     degree 2. The ring survives any single failure.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

const (
	methodRing   = "Ring"
	minRingNodes = 3
)

// Ring returns a Constructor that closes names into a single cycle.
func Ring(names []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := uniqueNames(methodRing, names)
		if err != nil {
			return err
		}
		g.Clear()
		if len(ids) < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, len(ids), minRingNodes, ErrTooFewNodes)
		}
		if err = addNodes(methodRing, g, ids); err != nil {
			return err
		}
		for i := range ids {
			if _, err = link(methodRing, g, cfg, ids[i], ids[(i+1)%len(ids)]); err != nil {
				return err
			}
		}
		return nil
	}
}
