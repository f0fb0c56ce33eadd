// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/config"
	"github.com/katalvlaran/lvmesh/core"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestBuildFullMesh(t *testing.T) {
	out, err := run(t, "build", "--mode", "full", "--names", "A,B,C")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "nodes=3 edges=3", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "e1"), lines[1])
}

func TestBuildIDsAndLatencyDist(t *testing.T) {
	out, err := run(t, "build", "--mode", "ring", "--nodes", "3", "--ids", "symbol", "--latency-dist", "normal")
	require.NoError(t, err)
	assert.Regexp(t, `e1\s+A\s+B\s+\d+ms\n`, out)
	assert.Regexp(t, `e3\s+C\s+A\s+\d+ms\n`, out)

	_, err = run(t, "build", "--mode", "ring", "--nodes", "30", "--ids", "symbol")
	assert.ErrorIs(t, err, config.ErrInvalid)
	_, err = run(t, "build", "--mode", "ring", "--latency-dist", "zipf")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRouteAfterFailure(t *testing.T) {
	out, err := run(t, "route", "A", "D",
		"--mode", "partial", "--names", "A,B,C,D,E,F", "--min-degree", "3",
		"--fail-node", "B", "--all", "--cutoff", "3",
	)
	require.NoError(t, err)
	first := strings.SplitN(out, "\n", 2)[0]
	assert.True(t, strings.HasPrefix(first, "A -> "), first)
	assert.True(t, strings.Contains(first, "-> D latency="), first)
	assert.NotContains(t, out, "B ->", "failed router never appears on a route")
}

func TestRouteUnknownNode(t *testing.T) {
	_, err := run(t, "route", "A", "Z", "--mode", "full", "--names", "A,B")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestFailReportsHealth(t *testing.T) {
	out, err := run(t, "fail", "--mode", "full", "--names", "A,B,C,D", "--node", "C")
	require.NoError(t, err)
	assert.Contains(t, out, "3/4 (75.0%)")
	assert.Regexp(t, `connected\s+true`, out)
	assert.Regexp(t, `mesh valid\s+true`, out)

	_, err = run(t, "fail", "--mode", "full", "--names", "A,B", "--link", "AB")
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestFailReachabilityAndPartitions(t *testing.T) {
	out, err := run(t, "fail", "--mode", "ring", "--names", "A,B,C,D", "--node", "B", "--from", "A")
	require.NoError(t, err)
	assert.Regexp(t, `hop 1\s+D\n`, out)
	assert.Regexp(t, `hop 2\s+C\n`, out)
	assert.Regexp(t, `cut from A\s+\[\]`, out)
	assert.NotContains(t, out, "partition")

	out, err = run(t, "fail", "--mode", "ring", "--names", "A,B,C,D", "--node", "A,C", "--from", "B")
	require.NoError(t, err)
	assert.Regexp(t, `components\s+2`, out)
	assert.Regexp(t, `partition 1\s+B\n`, out)
	assert.Regexp(t, `partition 2\s+D\n`, out)
	assert.Regexp(t, `cut from B\s+\[D\]`, out)
	assert.NotContains(t, out, "hop 1")

	out, err = run(t, "fail", "--mode", "ring", "--names", "A,B,C,D,E,F", "--from", "A", "--hops", "1")
	require.NoError(t, err)
	assert.Regexp(t, `hop 1\s+B F\n`, out)
	assert.Regexp(t, `cut from A\s+\[C D E\]`, out)

	_, err = run(t, "fail", "--mode", "ring", "--names", "A,B,C", "--node", "A", "--from", "A")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestAnalyzeExactWithMetrics(t *testing.T) {
	out, err := run(t, "analyze", "--mode", "partial", "--names", "A,B,C,D,E,F", "--min-degree", "3", "--exact", "--metrics")
	require.NoError(t, err)
	assert.Regexp(t, `mesh valid \(min degree 2\)\s+true`, out)
	assert.Regexp(t, `node fault tolerance\s+6`, out)
	assert.Regexp(t, `spare links\s+5`, out)
	assert.Regexp(t, `single points of failure\s+\[\]`, out)
	assert.Contains(t, out, "lvmesh_topology_nodes 6")
	assert.Contains(t, out, "lvmesh_topology_edges 10")
}

func TestStarHubIsSinglePointOfFailure(t *testing.T) {
	out, err := run(t, "analyze", "--mode", "star", "--names", "hub,a,b,c", "--exact")
	require.NoError(t, err)
	assert.Regexp(t, `single points of failure\s+\[hub\]`, out)
	assert.Regexp(t, `spare links\s+0`, out)
}

func TestAnalyzeMatrix(t *testing.T) {
	out, err := run(t, "analyze", "--mode", "ring", "--names", "A,B,C,D", "--matrix")
	require.NoError(t, err)
	assert.Regexp(t, `A\s+0\s+\d+\s+\d+\s+\d+`, out)
	assert.Regexp(t, `\s+A\s+B\s+C\s+D\s*\n`, out)
}

func TestCustomTopologyFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	topo := filepath.Join(dir, "topo.yaml")
	require.NoError(t, os.WriteFile(topo, []byte(`
name: lab
links:
  - {a: R1, b: R2, latency: 3}
  - {a: R2, b: R3, latency: 4}
  - {a: R1, b: R3, latency: 9}
`), 0o600))
	cfgPath := filepath.Join(dir, "meshsim.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("build:\n  mode: custom\n  topology: "+topo+"\n"), 0o600))

	out, err := run(t, "route", "R1", "R3", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "R1 -> R2 -> R3 latency=7 hops=2\n", out)
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "build", "--mode", "bogus")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
