// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// latency_fn.go: edge latency distributions for generated topologies.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Default latency bounds in milliseconds for generated links.
const (
	DefaultLatencyMin = 5
	DefaultLatencyMax = 30
)

// DefaultLinkLatency is used for declared links (FromTopology) that omit a
// latency.
const DefaultLinkLatency float64 = 10

// LatencyFn produces an edge latency from the builder RNG.
// It must be deterministic for a given RNG state and never return a
// negative, NaN or infinite value.
type LatencyFn func(rng *rand.Rand) float64

// DefaultLatencyFn draws uniformly from the integers in
// [DefaultLatencyMin, DefaultLatencyMax].
func DefaultLatencyFn(rng *rand.Rand) float64 {
	return float64(DefaultLatencyMin + rng.Intn(DefaultLatencyMax-DefaultLatencyMin+1))
}

// ConstantLatencyFn returns a LatencyFn that always yields v and consumes no
// randomness. Panics if v is negative, NaN or infinite.
func ConstantLatencyFn(v float64) LatencyFn {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("ConstantLatencyFn: value must be finite and ≥ 0, got %g", v))
	}
	return func(_ *rand.Rand) float64 {
		return v
	}
}

// UniformIntLatencyFn samples uniformly from the integers in [min, max].
// Panics unless 0 ≤ min ≤ max.
func UniformIntLatencyFn(min, max int) LatencyFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntLatencyFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1
	return func(rng *rand.Rand) float64 {
		return float64(min + rng.Intn(span))
	}
}

// UniformLatencyFn samples continuously from [min, max).
// Panics unless 0 ≤ min ≤ max and both are finite.
func UniformLatencyFn(min, max float64) LatencyFn {
	if min < 0 || max < min || math.IsInf(max, 0) || math.IsNaN(min) || math.IsNaN(max) {
		panic(fmt.Sprintf("UniformLatencyFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// NormalLatencyFn samples from N(mean, stddev), rounded to the nearest
// millisecond and clipped at 0. Panics if stddev < 0.
func NormalLatencyFn(mean, stddev float64) LatencyFn {
	if stddev < 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
		panic(fmt.Sprintf("NormalLatencyFn: stddev must be ≥ 0, got %g", stddev))
	}
	return func(rng *rand.Rand) float64 {
		sample := math.Round(rng.NormFloat64()*stddev + mean)
		if sample < 0 {
			return 0
		}
		return sample
	}
}
