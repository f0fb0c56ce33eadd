// SPDX-License-Identifier: MIT
// Package: lvmesh/builder
//
// impl_topology.go: FromTopology: build a declared custom network.
//
// Contract:
//   - Does NOT clear the store, so declarations compose with other constructors.
//   - Nodes are added in declaration order; re-declared nodes merge attributes.
//   - Links are added in declaration order; undeclared endpoints are created.
//   - A link without latency gets DefaultLinkLatency; declared latencies are
//     taken verbatim (cfg.latencyFn is not consulted).
//   - A repeated link replaces the earlier attributes (one edge per pair).
//
// Complexity: O(|Nodes| + |Links|).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmesh/core"
	"go.uber.org/zap"
)

const methodFromTopology = "FromTopology"

// Topology is a declared network: named nodes with attributes and the links
// between them. It is the YAML document shape read by config.LoadTopology.
type Topology struct {
	Name  string     `yaml:"name" json:"name"`
	Nodes []NodeSpec `yaml:"nodes" json:"nodes" validate:"dive"`
	Links []LinkSpec `yaml:"links" json:"links" validate:"dive"`
}

// NodeSpec declares one node.
type NodeSpec struct {
	ID       string            `yaml:"id" json:"id" validate:"required"`
	Location string            `yaml:"location,omitempty" json:"location,omitempty"`
	Role     string            `yaml:"role,omitempty" json:"role,omitempty"`
	Extra    map[string]string `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// LinkSpec declares one undirected link. A nil Latency means
// DefaultLinkLatency.
type LinkSpec struct {
	A         string            `yaml:"a" json:"a" validate:"required"`
	B         string            `yaml:"b" json:"b" validate:"required,nefield=A"`
	Latency   *float64          `yaml:"latency,omitempty" json:"latency,omitempty" validate:"omitempty,gte=0"`
	Bandwidth float64           `yaml:"bandwidth,omitempty" json:"bandwidth,omitempty" validate:"gte=0"`
	Extra     map[string]string `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// FromTopology returns a Constructor that adds the declared nodes and links.
func FromTopology(spec Topology) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for _, n := range spec.Nodes {
			attrs := core.NodeAttrs{Location: n.Location, Role: n.Role, Extra: n.Extra}
			if _, err := g.AddNode(n.ID, attrs); err != nil {
				return fmt.Errorf("%s: AddNode(%q): %w", methodFromTopology, n.ID, err)
			}
		}
		for i, l := range spec.Links {
			lat := DefaultLinkLatency
			if l.Latency != nil {
				lat = *l.Latency
			}
			bw := l.Bandwidth
			if bw == 0 {
				bw = cfg.bandwidth
			}
			attrs := core.EdgeAttrs{Latency: lat, Bandwidth: bw, Extra: l.Extra}
			if _, err := g.AddEdge(l.A, l.B, attrs); err != nil {
				return fmt.Errorf("%s: links[%d] %s-%s: %w", methodFromTopology, i, l.A, l.B, err)
			}
		}
		cfg.logger.Debug("declared topology applied",
			zap.String("name", spec.Name),
			zap.Int("nodes", len(spec.Nodes)),
			zap.Int("links", len(spec.Links)),
		)
		return nil
	}
}

// Latency returns a pointer to v, for building LinkSpec literals.
func Latency(v float64) *float64 { return &v }
