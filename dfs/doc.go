// SPDX-License-Identifier: MIT
// Package dfs implements depth-first algorithms on a core.Reader.
//
// What:
//
//   - AllSimplePaths(g, s, t, cutoff, opts...): enumerates every simple path
//     of at most cutoff hops between two nodes, in depth-first order
//     following neighbor insertion order. Used for redundancy analysis only;
//     its cost is exponential in the number of paths, hence the mandatory
//     cutoff plus the optional WithMaxPaths and WithContext bounds.
//   - ArticulationPoints(g): exact cut vertices via Tarjan low-links.
//
// Complexity:
//
//   - AllSimplePaths:     Time O(P·L) for P emitted paths of length ≤ L, plus
//     pruned branches; Memory O(V + P·L).
//   - ArticulationPoints: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrNegativeCutoff       cutoff < 0 (wraps core.ErrInvalidConfiguration)
//   - core.ErrNotFound        an endpoint is missing
//   - ErrOptionViolation      invalid Option (e.g. MaxPaths ≤ 0)
//   - context.Canceled        enumeration canceled via context
package dfs
