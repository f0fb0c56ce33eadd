// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_random_mesh.go - implementation of RandomMesh(n, d) constructor.
//
// Canonical model:
//   - Spanning tree first: node i>0 attaches to a uniformly random node in
//     [0, i-1], so the base topology is connected before any extra edge.
//   - Extra edges: draw two uniform endpoints, skip self-pairs and already
//     connected pairs, until EdgeCount reaches TargetEdges(n,d) or n² draws
//     have been spent.
//
// Contract:
//   - n ≥ 0 and d ≥ 0 (else ErrNegativeParameter).
//   - Clears the store first.
//   - Best effort: the target may be missed when the draw budget runs out.
//     The result is still connected; callers compare EdgeCount() against
//     TargetEdges(n,d). A shortfall is logged at debug level.
//
// RNG draw order (stable across releases):
//   - tree edge i: parent = Intn(i), then latency.
//   - extra draw:  u = Intn(n), v = Intn(n), then latency only if accepted.
//
// Complexity:
//   - Time: O(n) tree + O(n²) draws worst case.
//   - Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
	"go.uber.org/zap"
)

const methodRandomMesh = "RandomMesh"

// TargetEdges returns ⌊n·d/2⌋, the edge count RandomMesh aims for.
func TargetEdges(n, d int) int {
	if n <= 0 || d <= 0 {
		return 0
	}
	return n * d / 2
}

// RandomMesh returns a Constructor that builds a connected random mesh of n
// nodes with target average degree d. Node IDs come from the configured
// IDFn.
func RandomMesh(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 || d < 0 {
			return fmt.Errorf("%s: n=%d, d=%d: %w", methodRandomMesh, n, d, ErrNegativeParameter)
		}
		g.Clear()

		ids := Names(n, cfg.idFn)
		if err := addNodes(methodRandomMesh, g, ids); err != nil {
			return err
		}

		rng := cfg.rng
		for i := 1; i < n; i++ {
			parent := rng.Intn(i)
			if _, err := link(methodRandomMesh, g, cfg, ids[parent], ids[i]); err != nil {
				return err
			}
		}

		target := TargetEdges(n, d)
		maxAttempts := n * n
		for attempts := 0; g.EdgeCount() < target && attempts < maxAttempts; attempts++ {
			u, v := ids[rng.Intn(n)], ids[rng.Intn(n)]
			if u == v {
				continue
			}
			if ok, _ := g.HasEdge(u, v); ok {
				continue
			}
			if _, err := link(methodRandomMesh, g, cfg, u, v); err != nil {
				return err
			}
		}

		if got := g.EdgeCount(); got < target {
			cfg.logger.Debug("random mesh below target edge count",
				zap.Int("nodes", n),
				zap.Int("degree", d),
				zap.Int("target", target),
				zap.Int("edges", got),
			)
		}
		return nil
	}
}
