// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_grid.go: implementation of Grid(names, cols) constructor.
//
// Contract:
//   - Clears the store first.
//   - Lays names out row-major, cols per row; the last row may be short.
//     cols == 0 picks ⌈√n⌉. cols < 0 is ErrNegativeParameter.
//   - At least one name (else ErrTooFewNodes).
//   - For each cell emit Right then Down when that neighbor exists.
//
// Complexity: O(n) nodes + O(n) edges.
//
// Determinism:
//   - Stable edge order: row-major scan, Right before Down.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor that wires names into an orthogonal grid.
func Grid(names []string, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cols < 0 {
			return fmt.Errorf("%s: cols=%d: %w", methodGrid, cols, ErrNegativeParameter)
		}
		ids, err := uniqueNames(methodGrid, names)
		if err != nil {
			return err
		}
		g.Clear()
		n := len(ids)
		if n == 0 {
			return fmt.Errorf("%s: n=0: %w", methodGrid, ErrTooFewNodes)
		}
		if cols == 0 {
			cols = int(math.Ceil(math.Sqrt(float64(n))))
		}
		if err = addNodes(methodGrid, g, ids); err != nil {
			return err
		}
		for i := range ids {
			if right := i + 1; right < n && right%cols != 0 {
				if _, err = link(methodGrid, g, cfg, ids[i], ids[right]); err != nil {
					return err
				}
			}
			if down := i + cols; down < n {
				if _, err = link(methodGrid, g, cfg, ids[i], ids[down]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
