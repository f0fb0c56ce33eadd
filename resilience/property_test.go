// SPDX-License-Identifier: MIT
package resilience_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/resilience"
)

// TestAnalyzerProperties cross-checks the heuristics against the exact
// answers on random meshes.
func TestAnalyzerProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based test in short mode")
	}
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("no single point of failure iff κ ≥ 2", prop.ForAll(
		func(n, d int, seed int64) bool {
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomMesh(n, d),
			)
			if err != nil {
				return false
			}
			c, err := resilience.ExactConnectivity(g)
			if err != nil {
				return false
			}
			spof := resilience.SinglePointsOfFailure(g)
			return (len(spof) == 0) == (c.Node >= 2) && c.Node <= c.Edge
		},
		gen.IntRange(3, 16),
		gen.IntRange(2, 6),
		gen.Int64(),
	))

	properties.Property("fault tolerance is full on 2-connected meshes", prop.ForAll(
		func(n, k int) bool {
			g, err := builder.BuildGraph(nil, builder.PartialMesh(builder.Names(n, builder.NodeIDFn), k))
			if err != nil {
				return false
			}
			return resilience.NodeFaultTolerance(g) == min(n, resilience.FaultToleranceNodes) &&
				resilience.IsMeshValid(g, k)
		},
		gen.IntRange(6, 20),
		gen.IntRange(2, 4),
	))

	properties.TestingRun(t)
}
