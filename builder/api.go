// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - Two orchestrators: Build(g, bopts, cons...) mutates an existing store,
//     BuildGraph(bopts, cons...) creates a fresh one. Both resolve cfg once and
//     run cons in order.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return errors wrapping the core error kinds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
	"go.uber.org/zap"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw every random number from cfg.rng, in a documented order.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies all
// constructors to g in order. The first constructor error is wrapped with
// "Build: %w" and returned immediately; constructors that clear the store do
// so before validating their size constraints, so a failing PartialMesh never
// leaves a half-built topology behind.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
//
// Concurrency: Build is a batch mutation. The caller owns g for its duration.
func Build(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Build: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}
	cfg.logger.Debug("topology built",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("constructors", len(cons)),
	)
	return nil
}

// BuildGraph creates a new core.Graph and applies cons with options bopts.
// On error the partially built graph is discarded and nil is returned.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}
	return g, nil
}
