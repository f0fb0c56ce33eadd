// SPDX-License-Identifier: MIT
//
// File: simulator.go
// Role: Simulator state, failure injection and read views.

package failure

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmesh/core"
)

// Record is the accumulated failure history in the order failures were
// applied. Edge pairs are normalized so that pair[0] < pair[1].
type Record struct {
	Nodes []string
	Edges [][2]string
}

// Simulator mutates one live graph and tracks what it removed.
type Simulator struct {
	mu sync.Mutex

	id        string
	live      *core.Graph
	baseline  *core.Snapshot
	record    Record
	log       *zap.Logger
	collector Collector
}

// New snapshots g as the baseline and returns a Simulator that owns g from
// now on. Callers must not mutate g except through the Simulator.
// Panics on a nil graph.
func New(g *core.Graph, opts ...Option) *Simulator {
	if g == nil {
		panic("failure: New(nil)")
	}
	s := &Simulator{
		id:       uuid.NewString(),
		live:     g,
		baseline: g.Snapshot(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("simulation", s.id))
	s.log.Debug("simulation started",
		zap.Int("nodes", s.baseline.NodeCount()),
		zap.Int("edges", s.baseline.EdgeCount()),
	)
	s.report("")
	return s
}

// ID returns the simulation identifier used to correlate log lines.
func (s *Simulator) ID() string { return s.id }

// FailNode removes id and every incident link from the live graph and
// records it. It returns false, recording nothing, when id is absent
// (including when it has already failed).
func (s *Simulator) FailNode(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	deg, err := s.live.Degree(id)
	if err != nil {
		return false
	}
	if !s.live.RemoveNode(id) {
		return false
	}
	s.record.Nodes = append(s.record.Nodes, id)
	s.log.Info("node failed", zap.String("node", id), zap.Int("links_lost", deg))
	s.report(KindNode)
	return true
}

// FailEdge removes the link between a and b and records the unordered pair.
// It returns false, recording nothing, when the link is absent.
func (s *Simulator) FailEdge(a, b string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live.RemoveEdge(a, b) {
		return false
	}
	s.record.Edges = append(s.record.Edges, normalize(a, b))
	s.log.Info("link failed", zap.String("a", a), zap.String("b", b))
	s.report(KindEdge)
	return true
}

// Record returns a copy of the failure history.
func (s *Simulator) Record() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyRecord()
}

// State returns a view and the failure history that produced it.
func (s *Simulator) State() (*core.Snapshot, Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live.Snapshot(), s.copyRecord()
}

func (s *Simulator) copyRecord() Record {
	return Record{
		Nodes: append([]string(nil), s.record.Nodes...),
		Edges: append([][2]string(nil), s.record.Edges...),
	}
}

// FailedNodes and FailedEdges return the history sizes.
func (s *Simulator) FailedNodes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.record.Nodes)
}

func (s *Simulator) FailedEdges() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.record.Edges)
}

// View returns an immutable snapshot of the live graph taken under the
// failure lock.
func (s *Simulator) View() *core.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live.Snapshot()
}

// Baseline returns the snapshot captured by New.
func (s *Simulator) Baseline() *core.Snapshot { return s.baseline }

// Live exposes the mutable store for callers that coordinate their own
// locking with the Simulator.
func (s *Simulator) Live() *core.Graph { return s.live }

// report must be called with s.mu held (or before s is shared).
func (s *Simulator) report(kind string) {
	if s.collector == nil {
		return
	}
	if kind != "" {
		s.collector.IncFailure(kind)
	}
	s.collector.SetTopology(s.live.NodeCount(), s.live.EdgeCount())
}

func normalize(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}
