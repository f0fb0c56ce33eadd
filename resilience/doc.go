// SPDX-License-Identifier: MIT
// Package resilience derives connectivity, redundancy and fault-tolerance
// metrics from a mesh snapshot.
//
// Every function takes a core.Reader and never mutates it; pass a
// failure.Simulator View (a *core.Snapshot) to analyze a degraded mesh
// without racing further failures.
//
// Heuristics and exact answers:
//
//   - IsMeshValid / RedundancySample: the redundancy part is a SAMPLE. Only
//     up to five pairs drawn from the first five nodes (each against its
//     next two list successors) are checked for at least two simple paths,
//     and 60% of them (at least one) must pass. It bounds the cost on large
//     meshes and proves nothing about unsampled pairs.
//   - NodeFaultTolerance: counts, among the first ten nodes only, those whose
//     individual removal leaves the rest connected. It is an approximate
//     lower-bound style indicator, NOT the minimum vertex cut.
//   - SinglePointsOfFailure and ExactConnectivity give the exact answers
//     (articulation points, κ(G) and λ(G) via max-flow) when the cost is
//     acceptable.
//
// Path metrics (Diameter, AveragePathLength) count hops by default;
// WithLatencyWeights switches them to total latency. Both report
// core.ErrDisconnected on a disconnected mesh and 0 on an empty one.
//
// After failures, Health lists the surviving partitions and Reachability
// groups the routers one router can still reach by hop count, naming the
// ones cut off.
//
// Empty graphs are a valid state: metric functions return zero values, not
// errors, and IsMeshValid reports false.
package resilience
