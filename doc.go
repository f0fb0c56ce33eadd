// SPDX-License-Identifier: MIT

// Package lvmesh builds mesh network topologies, routes over them, injects
// router and link failures, and reports how resilient the mesh stays.
//
// The library is organized by concern:
//
//	core/         thread-safe Graph store, Snapshot, Adjacency view, Path
//	builder/      RandomMesh, FullMesh, PartialMesh, Ring, Star, Grid, FromTopology
//	bfs/, dfs/    hop distances, components, simple paths, articulation points
//	dijkstra/     minimum-latency routing with deterministic tie-breaks
//	flow/         max-flow node and edge connectivity (Edmonds–Karp)
//	prim_kruskal/ minimum-latency backbone (spanning tree)
//	matrix/       dense latency matrices, Floyd–Warshall all-pairs
//	failure/      failure simulator over a live copy and a frozen baseline
//	resilience/   mesh validation, path metrics, fault tolerance, health
//	metrics/      Prometheus gauges and counters for topologies and failures
//	logging/      zap logger with an optional rotated JSON file sink
//	config/       viper configuration, validation and YAML topologies
//	cmd/meshsim/  the cobra CLI tying it together
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, builder.PartialMesh([]string{"A", "B", "C", "D", "E", "F"}, 3))
//	sim := failure.New(g)
//	sim.FailNode("C")
//	p, _ := dijkstra.ShortestPath(sim.View(), "A", "F")
//	h := resilience.SimulationHealth(sim)
//
// The root package holds documentation only.
package lvmesh
