// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: Route value shared by the routing packages.

package core

// Path is an ordered node sequence with its total latency.
// A single-node path (source == target) has zero hops and zero latency.
type Path struct {
	Nodes   []string
	Latency float64
}

// Hops returns the number of links on the path.
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}
	return len(p.Nodes) - 1
}

// Contains reports whether id is on the path.
func (p Path) Contains(id string) bool {
	for _, n := range p.Nodes {
		if n == id {
			return true
		}
	}
	return false
}
