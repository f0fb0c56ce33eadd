// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Reader and the
// connectivity helpers the resilience analyzer re-runs after every failure.
//
//   - Walk(g, start, opts...) reaches routers one hop layer at a time and
//     returns a Result (Layers, Parent, Order, Hops, PathTo). The layers are
//     the "blast radius" rings used by reachability reports.
//   - Connected, Components, ComponentLabels and HopDistances answer the
//     connectivity questions on the dense core.Adjacency view.
//
// Options: WithContext(ctx) is checked between layers; WithMaxHops(h) stops
// after h layers (0 means no limit, negative is ErrOptionViolation).
//
// Neighbors are scanned in link insertion order, so layers are reproducible.
// Walk is O(V+E) time and O(V) memory.
//
// Errors: ErrGraphNil, ErrStartNotFound (wraps core.ErrNotFound),
// ErrOptionViolation, and the context error on cancellation.
package bfs
