// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand,
//     otherwise DefaultSeed applies.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator used by RandomMesh: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLatencyFn overrides the per-edge latency generator. Panics on nil.
func WithLatencyFn(fn LatencyFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLatencyFn(nil)")
	}
	return func(c *builderConfig) {
		c.latencyFn = fn
	}
}

// WithLatencyRange draws every generated latency uniformly from the integers
// in [min,max]. Panics unless 0 ≤ min ≤ max.
func WithLatencyRange(min, max int) BuilderOption {
	return WithLatencyFn(UniformIntLatencyFn(min, max))
}

// WithLatency gives every generated edge the same explicit latency.
// Panics on negative, NaN or infinite values.
func WithLatency(v float64) BuilderOption {
	return WithLatencyFn(ConstantLatencyFn(v))
}

// WithBandwidth stamps b on every generated edge. Panics if b < 0 or b is
// not finite.
func WithBandwidth(b float64) BuilderOption {
	if b < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
		panic(fmt.Sprintf("builder: WithBandwidth(%g): must be finite and ≥ 0", b))
	}
	return func(c *builderConfig) {
		c.bandwidth = b
	}
}

// WithLogger attaches a logger for construction summaries. A nil logger
// keeps the no-op default.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(c *builderConfig) {
		if l != nil {
			c.logger = l.Named("builder")
		}
	}
}
