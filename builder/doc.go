// SPDX-License-Identifier: MIT
// Package builder constructs mesh topologies on a core.Graph using
// "functional-options"-style building blocks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build / BuildGraph: resolve options once, apply Constructors in order.
//     – Constructor:        func(g *core.Graph, cfg builderConfig) error.
//   - Topologies:
//     – RandomMesh(n, d):    random spanning tree plus random extra edges,
//     best effort towards TargetEdges(n,d) within n² draws.
//     – FullMesh(names):     every unordered pair exactly once.
//     – PartialMesh(names,k): ring plus degree top-up to k, preferring
//     under-degree partners, ties broken by list order.
//     – Ring(names), Star(names), Grid(names, cols): reference shapes
//     (cycle, hub-and-spoke, orthogonal lattice) for comparing resilience.
//     – FromTopology(spec):  a declared custom network (YAML shape).
//   - Configuration (BuilderOption):
//     – WithSeed / WithRand: RNG (default seed DefaultSeed = 42).
//     – WithLatencyRange / WithLatency / WithLatencyFn: latency policy
//     (default integral uniform [5,30] ms).
//     – WithBandwidth, WithIDScheme (default "Node%d"), WithLogger.
//
// Guarantees:
//
//   - Mesh constructors clear the store before building, so a failing
//     PartialMesh leaves an empty store and never a partial one.
//   - RandomMesh with n ≥ 1 is always connected, regardless of how many
//     extra edges it managed to place.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return errors wrapping core.ErrInvalidConfiguration
//     or core.ErrEmptyID.
//   - Same seed, options and constructor order ⇒ identical graphs, edge IDs
//     and latencies.
package builder
