// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Aggregate mesh metrics and network health reports.

package resilience

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvmesh/bfs"
	"github.com/katalvlaran/lvmesh/core"
)

// Metrics summarizes a mesh. The zero value describes an empty graph.
type Metrics struct {
	IsMesh             bool    `json:"is_mesh" yaml:"is_mesh"`
	IsConnected        bool    `json:"is_connected" yaml:"is_connected"`
	MinDegree          int     `json:"min_degree" yaml:"min_degree"`
	AvgDegree          float64 `json:"avg_degree" yaml:"avg_degree"`
	RedundancyRatio    float64 `json:"redundancy_ratio" yaml:"redundancy_ratio"`
	Diameter           float64 `json:"diameter" yaml:"diameter"`
	AveragePathLength  float64 `json:"average_path_length" yaml:"average_path_length"`
	NodeFaultTolerance int     `json:"node_fault_tolerance" yaml:"node_fault_tolerance"`
	BackboneLatency    float64 `json:"backbone_latency" yaml:"backbone_latency"`
	SpareLinks         int     `json:"spare_links" yaml:"spare_links"`
}

// MeshMetrics computes every metric in one pass. Path metrics, the
// redundancy ratio, fault tolerance and the backbone are only filled for
// connected meshes; IsMesh uses DefaultMinDegree.
func MeshMetrics(g core.Reader, opts ...Option) Metrics {
	var m Metrics
	if g == nil || g.NodeCount() == 0 {
		return m
	}
	o := resolve(opts)

	adj := core.NewAdjacency(g)
	m.MinDegree = adj.Degree(0)
	for i := range adj.IDs {
		m.MinDegree = min(m.MinDegree, adj.Degree(i))
	}
	m.AvgDegree = 2 * float64(adj.Edges) / float64(adj.Len())
	_, components := bfs.ComponentLabels(adj)
	m.IsConnected = components == 1
	m.IsMesh = IsMeshValid(g, DefaultMinDegree)

	if m.IsConnected {
		hops, _ := allPairs("MeshMetrics", g, options{})
		m.RedundancyRatio = redundancyRatio(g, int(hops.max)+RatioCutoffSlack)
		if o.weighted {
			lat, _ := allPairs("MeshMetrics", g, o)
			m.Diameter = lat.max
			m.AveragePathLength = mean(lat)
		} else {
			m.Diameter = hops.max
			m.AveragePathLength = mean(hops)
		}
		m.NodeFaultTolerance = NodeFaultTolerance(g)
		if b, err := LatencyBackbone(g); err == nil {
			m.BackboneLatency = b.Latency
			m.SpareLinks = b.Spare
		}
	}

	o.log.Debug("mesh metrics computed",
		zap.Int("nodes", adj.Len()),
		zap.Int("edges", adj.Edges),
		zap.Bool("connected", m.IsConnected),
		zap.Bool("mesh", m.IsMesh),
		zap.Float64("diameter", m.Diameter),
	)
	return m
}

func mean(st pathStats) float64 {
	if st.pairs == 0 {
		return 0
	}
	return st.sum / float64(st.pairs)
}

// NetworkHealth compares a live mesh against its baseline.
type NetworkHealth struct {
	ActiveNodes      int     `json:"active_nodes" yaml:"active_nodes"`
	TotalNodes       int     `json:"total_nodes" yaml:"total_nodes"`
	ActivePercentage float64 `json:"active_percentage" yaml:"active_percentage"`
	IsConnected      bool    `json:"is_connected" yaml:"is_connected"`
	Components       int     `json:"components" yaml:"components"`
	FailedNodes      int     `json:"failed_nodes" yaml:"failed_nodes"`
	FailedLinks      int     `json:"failed_links" yaml:"failed_links"`
	// Partitions lists the live components, largest first; ties keep the
	// order of each component's first router.
	Partitions [][]string `json:"partitions,omitempty" yaml:"partitions,omitempty"`
}

// Health reports how much of baseline survives in live. An empty live graph
// is disconnected with 0 components; an empty baseline gives 0%.
func Health(live, baseline core.Reader, failedNodes, failedLinks int) NetworkHealth {
	h := NetworkHealth{FailedNodes: failedNodes, FailedLinks: failedLinks}
	if baseline != nil {
		h.TotalNodes = baseline.NodeCount()
	}
	if live != nil {
		h.ActiveNodes = live.NodeCount()
	}
	if h.TotalNodes > 0 {
		h.ActivePercentage = float64(h.ActiveNodes) / float64(h.TotalNodes) * 100
	}
	if h.ActiveNodes > 0 {
		h.Partitions = bfs.Components(live)
		sort.SliceStable(h.Partitions, func(i, j int) bool {
			return len(h.Partitions[i]) > len(h.Partitions[j])
		})
		h.Components = len(h.Partitions)
		h.IsConnected = h.Components == 1
	}
	return h
}
