// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_partial_mesh.go: implementation of PartialMesh(names, k) constructor.
//
// Canonical model:
//  1. Clear the store. If n < k+1, stop with ErrTooFewNodes (empty store).
//  2. Ring: names[i] – names[(i+1) mod n]. For n == 2 both ring steps name the
//     same pair, so one edge results; n == 1 gets no ring edge.
//  3. For each node in list order, while its degree < k, connect it to the
//     first non-adjacent node (list order) whose degree is also < k; if none
//     exists, to the first non-adjacent node at all; stop for that node when
//     it is adjacent to everybody.
//
// Contract:
//   - k ≥ 0 (else ErrNegativeParameter).
//   - n ≥ k+1 ⇒ every degree ≥ k and the graph is connected.
//
// Complexity: O(n) ring + O(n²·k) candidate scans.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
)

const methodPartialMesh = "PartialMesh"

// PartialMesh returns a Constructor that lays names out as a ring and tops
// up every node to at least k neighbors, preferring under-degree partners.
func PartialMesh(names []string, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < 0 {
			return fmt.Errorf("%s: k=%d: %w", methodPartialMesh, k, ErrNegativeParameter)
		}
		ids, err := uniqueNames(methodPartialMesh, names)
		if err != nil {
			return err
		}
		g.Clear()
		n := len(ids)
		if n < k+1 {
			return fmt.Errorf("%s: n=%d < k+1=%d: %w", methodPartialMesh, n, k+1, ErrTooFewNodes)
		}
		if err = addNodes(methodPartialMesh, g, ids); err != nil {
			return err
		}

		if n > 1 {
			for i := 0; i < n; i++ {
				if _, err = link(methodPartialMesh, g, cfg, ids[i], ids[(i+1)%n]); err != nil {
					return err
				}
			}
		}

		// Degrees are tracked locally; the ring may have re-linked a pair (n == 2).
		deg := make([]int, n)
		for i, id := range ids {
			deg[i], _ = g.Degree(id)
		}

		for i := 0; i < n; i++ {
			for deg[i] < k {
				j := pickPartner(g, ids, deg, i, k)
				if j < 0 {
					break
				}
				if _, err = link(methodPartialMesh, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
				deg[i]++
				deg[j]++
			}
		}
		return nil
	}
}

// pickPartner returns the first index j ≠ i not adjacent to i, preferring
// nodes with deg[j] < k. It returns -1 when i is adjacent to everybody.
func pickPartner(g *core.Graph, ids []string, deg []int, i, k int) int {
	fallback := -1
	for j := range ids {
		if j == i {
			continue
		}
		if ok, _ := g.HasEdge(ids[i], ids[j]); ok {
			continue
		}
		if deg[j] < k {
			return j
		}
		if fallback < 0 {
			fallback = j
		}
	}
	return fallback
}
