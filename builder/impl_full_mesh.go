// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_full_mesh.go: implementation of FullMesh(names) constructor.
//
// Contract:
//   - Clears the store first.
//   - Empty names → core.ErrEmptyID; duplicates collapse to the first occurrence.
//   - Emits each unordered pair {i,j}, i<j, exactly once in lexicographic
//     index order: C(n,2) edges, every degree n-1.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import "github.com/katalvlaran/lvmesh/core"

const methodFullMesh = "FullMesh"

// FullMesh returns a Constructor that connects every pair of names.
func FullMesh(names []string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := uniqueNames(methodFullMesh, names)
		if err != nil {
			return err
		}
		g.Clear()
		if err = addNodes(methodFullMesh, g, ids); err != nil {
			return err
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				if _, err = link(methodFullMesh, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
