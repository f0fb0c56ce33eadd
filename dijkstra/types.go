// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Errors and configuration options for latency-weighted shortest paths.

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a source or target node does not
	// exist. It wraps core.ErrNotFound.
	ErrVertexNotFound = fmt.Errorf("dijkstra: node not found: %w", core.ErrNotFound)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or
	// NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// negative, which would make every link impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes farther than this latency are not explored. Default +Inf.
// InfEdgeThreshold – links with latency ≥ this threshold are treated as
// impassable (e.g. saturated links). Default +Inf.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum latency threshold.
// Panics with ErrBadMaxDistance on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a latency above which links are skipped.
// Panics with ErrBadInfThreshold on zero, negative or NaN.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable links.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
