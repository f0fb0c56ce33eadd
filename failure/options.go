// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options and the metrics hook for a Simulator.

package failure

import "go.uber.org/zap"

// Collector receives failure and topology updates. *metrics.Collector
// satisfies it; nil disables reporting.
type Collector interface {
	IncFailure(kind string)
	SetTopology(nodes, edges int)
}

// Failure kinds passed to Collector.IncFailure.
const (
	KindNode = "node"
	KindEdge = "edge"
)

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger; the simulator names it "failure". Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l.Named("failure")
		}
	}
}

// WithCollector reports every applied failure and the resulting topology size.
func WithCollector(c Collector) Option {
	return func(s *Simulator) {
		s.collector = c
	}
}
