// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_star.go: implementation of Star(names) constructor.
//
// Contract:
//   - Clears the store first.
//   - names[0] is the hub; every other name is a leaf linked only to it.
//   - At least 2 distinct names (else ErrTooFewNodes).
//   - n-1 edges in leaf order; the hub is the single point of failure.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that links every leaf to the hub names[0].
func Star(names []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := uniqueNames(methodStar, names)
		if err != nil {
			return err
		}
		g.Clear()
		if len(ids) < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, len(ids), minStarNodes, ErrTooFewNodes)
		}
		if err = addNodes(methodStar, g, ids); err != nil {
			return err
		}
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if _, err = link(methodStar, g, cfg, hub, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
