// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Analyzer options and the sampling constants.

package resilience

import "go.uber.org/zap"

const (
	// SampleNodes is the node-list prefix used by the redundancy sample.
	SampleNodes = 5
	// SampleSuccessors is how many list successors each sampled node is paired with.
	SampleSuccessors = 2
	// SampleMaxPairs caps the number of sampled pairs.
	SampleMaxPairs = 5
	// SamplePassRatio is the fraction of sampled pairs that must be redundant.
	SamplePassRatio = 0.6

	// RatioNodes and RatioSuccessors bound the redundancy-ratio sweep.
	RatioNodes      = 10
	RatioSuccessors = 5
	// RatioCutoffSlack is added to the hop diameter to form the path cutoff.
	RatioCutoffSlack = 2

	// FaultToleranceNodes is the node-list prefix probed by NodeFaultTolerance.
	FaultToleranceNodes = 10

	// DefaultMinDegree is the degree MeshMetrics uses for IsMesh.
	DefaultMinDegree = 2
)

// Option configures path metrics and MeshMetrics.
type Option func(*options)

type options struct {
	weighted bool
	log      *zap.Logger
}

// WithLatencyWeights measures Diameter and AveragePathLength in total latency
// instead of hops.
func WithLatencyWeights() Option {
	return func(o *options) { o.weighted = true }
}

// WithLogger receives a debug line per MeshMetrics run. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l.Named("resilience")
		}
	}
}

func resolve(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
