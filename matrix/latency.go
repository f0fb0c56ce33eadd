// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Latency matrices of a mesh: direct link latencies and the all-pairs
//     closure, indexed by router ID in enumeration order.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmesh/core"
)

// Latency is a square router × router matrix with its index.
type Latency struct {
	// IDs maps index → router ID, in the graph's enumeration order.
	IDs []string
	// Index maps router ID → index.
	Index map[string]int
	// D holds the values; +Inf off the diagonal means no link (or no path).
	D *Dense
}

// At returns the value between routers a and b.
func (l *Latency) At(a, b string) (float64, error) {
	i, ok := l.Index[a]
	if !ok {
		return 0, fmt.Errorf("Latency.At(%q): %w", a, ErrUnknownNode)
	}
	j, ok := l.Index[b]
	if !ok {
		return 0, fmt.Errorf("Latency.At(%q): %w", b, ErrUnknownNode)
	}
	return l.D.At(i, j)
}

// Links returns the direct-link latency matrix of g: 0 on the diagonal, the
// link latency for adjacent pairs, +Inf otherwise. An empty graph is
// ErrBadShape.
// Complexity: O(V² + E).
func Links(g core.Reader) (*Latency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	adj := core.NewAdjacency(g)
	d, err := NewDense(adj.Len(), adj.Len())
	if err != nil {
		return nil, fmt.Errorf("Links: %w", err)
	}
	inf := math.Inf(1)
	n := adj.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = inf
			}
		}
		for _, a := range adj.Arcs[i] {
			d.data[i*n+a.To] = a.Latency
		}
	}
	return &Latency{IDs: adj.IDs, Index: adj.Index, D: d}, nil
}

// AllPairs returns the shortest-path latency between every pair of routers.
// Unreachable pairs stay +Inf.
// Complexity: O(V³).
func AllPairs(g core.Reader) (*Latency, error) {
	l, err := Links(g)
	if err != nil {
		return nil, err
	}
	if err = FloydWarshall(l.D); err != nil {
		return nil, fmt.Errorf("AllPairs: %w", err)
	}
	return l, nil
}
