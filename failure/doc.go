// SPDX-License-Identifier: MIT
// Package failure injects router and link failures into a live mesh and
// keeps the history of what was taken down.
//
// A Simulator owns exactly one live *core.Graph:
//
//	sim := failure.New(g, failure.WithLogger(log))
//	sim.FailNode("R3")         // true: R3 and its links are gone
//	sim.FailNode("R3")         // false: already failed
//	sim.FailEdge("R1", "R2")   // true if the link existed
//	view := sim.View()         // copy-on-write snapshot for routing/analysis
//
// Guarantees:
//
//   - Failures are serialized by one mutex per Simulator; View is taken
//     under the same lock, so readers never observe a half-applied failure.
//   - The baseline snapshot captured by New is never mutated.
//   - The failure Record grows monotonically. Recovery is not provided.
//
// The Simulator holds no health logic: health is obtained by running the
// resilience package against View (and Baseline).
package failure
