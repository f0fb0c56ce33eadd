// SPDX-License-Identifier: MIT
// Package metrics exposes mesh topology and failure counters to Prometheus.
//
// A Collector satisfies failure.Collector, so a Simulator can drive it
// directly:
//
//	col, _ := metrics.NewCollector(reg)
//	sim := failure.New(g, failure.WithCollector(col))
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names.
const (
	TopologyNodes     = "lvmesh_topology_nodes"
	TopologyEdges     = "lvmesh_topology_edges"
	FailuresTotal     = "lvmesh_failures_total"
	BuildEdgeShortage = "lvmesh_build_edges_shortfall"
)

// Collector bundles the lvmesh gauges and counters.
type Collector struct {
	gatherer prometheus.Gatherer

	Nodes     prometheus.Gauge
	Edges     prometheus.Gauge
	Failures  *prometheus.CounterVec
	Shortfall prometheus.Gauge
}

// NewCollector registers the lvmesh metrics against reg, defaulting to the
// global Prometheus registry when nil. Registering twice against the same
// registry reuses the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	nodes, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: TopologyNodes,
		Help: "Current number of routers in the live mesh.",
	}), TopologyNodes)
	if err != nil {
		return nil, err
	}
	edges, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: TopologyEdges,
		Help: "Current number of links in the live mesh.",
	}), TopologyEdges)
	if err != nil {
		return nil, err
	}
	failures, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: FailuresTotal,
		Help: "Total number of injected failures, labeled by kind (node or edge).",
	}, []string{"kind"}), FailuresTotal)
	if err != nil {
		return nil, err
	}
	shortfall, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: BuildEdgeShortage,
		Help: "Edges the last random mesh build fell short of its target.",
	}), BuildEdgeShortage)
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:  gatherer,
		Nodes:     nodes,
		Edges:     edges,
		Failures:  failures,
		Shortfall: shortfall,
	}, nil
}

// SetTopology records the current mesh size.
func (c *Collector) SetTopology(nodes, edges int) {
	c.Nodes.Set(float64(nodes))
	c.Edges.Set(float64(edges))
}

// IncFailure counts one failure of the given kind.
func (c *Collector) IncFailure(kind string) {
	c.Failures.WithLabelValues(kind).Inc()
}

// ObserveBuild records how far a build landed below its edge target.
// Builds at or above target record 0.
func (c *Collector) ObserveBuild(target, actual int) {
	c.Shortfall.Set(float64(max(0, target-actual)))
}

// Handler serves the registry the collector was registered against.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metrics: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metrics: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
