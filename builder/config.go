// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   - idFn      = NodeIDFn               ("Node0","Node1",...)
//   - rng       = rand.New(NewSource(42))
//   - latencyFn = DefaultLatencyFn       (integral uniform [5,30])
//   - bandwidth = 0                      (unspecified)
//   - logger    = zap.NewNop()

package builder

import (
	"math/rand"

	"go.uber.org/zap"
)

// DefaultSeed seeds the RNG when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 42

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy for generated topologies: index -> ID.
	idFn IDFn
	// RNG for stochastic choices and latency draws. Never nil after resolution.
	rng *rand.Rand
	// Latency generator for every generated edge.
	latencyFn LatencyFn
	// Bandwidth stamped on generated edges; 0 means unspecified.
	bandwidth float64
	// Logger for construction summaries; never nil after resolution.
	logger *zap.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      NodeIDFn,
		latencyFn: DefaultLatencyFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// edgeAttrs draws the next latency and stamps the configured bandwidth.
func (c builderConfig) edgeAttrs() (float64, float64) {
	return c.latencyFn(c.rng), c.bandwidth
}
