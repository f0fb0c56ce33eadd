// SPDX-License-Identifier: MIT
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.ModeRandom, cfg.Build.Mode)
	assert.Equal(t, 10, cfg.Build.Nodes)
	assert.Equal(t, int64(42), cfg.Build.Seed)
	assert.Equal(t, 5, cfg.Build.LatencyMin)
	assert.Equal(t, 30, cfg.Build.LatencyMax)
	assert.Equal(t, config.DistInt, cfg.Build.LatencyDist)
	assert.Equal(t, config.IDsNode, cfg.Build.IDs)
	assert.Equal(t, 2, cfg.Analysis.MinDegree)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "meshsim", cfg.Logging.ServiceName)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeFile(t, "meshsim.yaml", `
logging:
  format: json
build:
  mode: partial
  names: [A, B, C, D, E, F]
  min_degree: 3
  latency: 10
analysis:
  min_degree: 3
`)
	t.Setenv("MESHSIM_BUILD_SEED", "7")
	t.Setenv("MESHSIM_ANALYSIS_EXACT", "true")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, config.ModePartial, cfg.Build.Mode)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, cfg.Build.Names)
	assert.Equal(t, 10.0, cfg.Build.Latency)
	assert.Equal(t, int64(7), cfg.Build.Seed)
	assert.True(t, cfg.Analysis.Exact)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() config.Config {
		v := viper.New()
		config.SetDefaults(v)
		cfg, err := config.FromViper(v)
		require.NoError(t, err)
		return cfg
	}

	cases := map[string]func(*config.Config){
		"unknown mode":        func(c *config.Config) { c.Build.Mode = "bogus" },
		"negative nodes":      func(c *config.Config) { c.Build.Nodes = -1 },
		"inverted latency":    func(c *config.Config) { c.Build.LatencyMin, c.Build.LatencyMax = 30, 5 },
		"custom without file": func(c *config.Config) { c.Build.Mode = config.ModeCustom },
		"empty name":          func(c *config.Config) { c.Build.Names = []string{"A", ""} },
		"bad log level":       func(c *config.Config) { c.Logging.Level = "loud" },
		"bad latency dist":    func(c *config.Config) { c.Build.LatencyDist = "poisson" },
		"bad id scheme":       func(c *config.Config) { c.Build.IDs = "greek" },
		"symbols run out":     func(c *config.Config) { c.Build.IDs, c.Build.Nodes = config.IDsSymbol, 27 },
		"partial too small": func(c *config.Config) {
			c.Build.Mode, c.Build.Nodes, c.Build.MinDegree = config.ModePartial, 3, 3
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestParseTopology(t *testing.T) {
	spec, err := config.ParseTopology([]byte(`
name: branch
nodes:
  - {id: R1, location: hq, role: core}
  - {id: R2}
links:
  - {a: R1, b: R2, latency: 4, bandwidth: 1000}
  - {a: R2, b: R3}
`))
	require.NoError(t, err)

	want := builder.Topology{
		Name:  "branch",
		Nodes: []builder.NodeSpec{{ID: "R1", Location: "hq", Role: "core"}, {ID: "R2"}},
		Links: []builder.LinkSpec{
			{A: "R1", B: "R2", Latency: builder.Latency(4), Bandwidth: 1000},
			{A: "R2", B: "R3"},
		},
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Fatalf("topology mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTopology_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":      "nodes:\n  - {id: R1, colour: red}\n",
		"self link":        "links:\n  - {a: R1, b: R1}\n",
		"missing endpoint": "links:\n  - {a: R1}\n",
		"negative latency": "links:\n  - {a: R1, b: R2, latency: -1}\n",
		"missing id":       "nodes:\n  - {role: edge}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.ParseTopology([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestBuildConfig_Constructor(t *testing.T) {
	topo := writeFile(t, "topo.yaml", "links:\n  - {a: R1, b: R2}\n  - {a: R2, b: R3, latency: 2}\n")

	cases := []struct {
		name  string
		build config.BuildConfig
		nodes int
		edges int
	}{
		{"random tree only", config.BuildConfig{Mode: config.ModeRandom, Nodes: 8, Degree: 0, Seed: 1, LatencyMin: 5, LatencyMax: 30}, 8, 7},
		{"full generated names", config.BuildConfig{Mode: config.ModeFull, Nodes: 5, Prefix: "R", Latency: 10}, 5, 10},
		{"partial", config.BuildConfig{Mode: config.ModePartial, Names: []string{"A", "B", "C", "D", "E", "F"}, MinDegree: 3, Latency: 1}, 6, 10},
		{"custom", config.BuildConfig{Mode: config.ModeCustom, Topology: topo}, 3, 2},
		{"ring", config.BuildConfig{Mode: config.ModeRing, Nodes: 5, Latency: 2}, 5, 5},
		{"star", config.BuildConfig{Mode: config.ModeStar, Names: []string{"hub", "a", "b", "c"}, Latency: 2}, 4, 3},
		{"grid", config.BuildConfig{Mode: config.ModeGrid, Nodes: 6, Columns: 3, Latency: 2}, 6, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			con, err := tc.build.Constructor()
			require.NoError(t, err)
			g, err := builder.BuildGraph(tc.build.Options(), con)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}

	_, err := config.BuildConfig{Mode: config.ModeCustom, Topology: filepath.Join(t.TempDir(), "none.yaml")}.Constructor()
	assert.Error(t, err)
}

func TestBuildConfig_PrefixNames(t *testing.T) {
	con, err := config.BuildConfig{Mode: config.ModeFull, Nodes: 3, Prefix: "R"}.Constructor()
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, con)
	require.NoError(t, err)
	assert.Equal(t, []string{"R0", "R1", "R2"}, g.NodeIDs())
}

func TestBuildConfig_IDSchemes(t *testing.T) {
	for _, tc := range []struct {
		build config.BuildConfig
		want  []string
	}{
		{config.BuildConfig{Mode: config.ModeRing, Nodes: 3, IDs: config.IDsSymbol}, []string{"A", "B", "C"}},
		{config.BuildConfig{Mode: config.ModeRandom, Nodes: 3, Degree: 2, IDs: config.IDsSymbol}, []string{"A", "B", "C"}},
		{config.BuildConfig{Mode: config.ModeRandom, Nodes: 3, Degree: 2, IDs: config.IDsExcel}, []string{"A", "B", "C"}},
		{config.BuildConfig{Mode: config.ModeRandom, Nodes: 3, Degree: 2, IDs: config.IDsSymbol, Prefix: "R"}, []string{"R0", "R1", "R2"}},
	} {
		con, err := tc.build.Constructor()
		require.NoError(t, err)
		g, err := builder.BuildGraph(tc.build.Options(), con)
		require.NoError(t, err)
		assert.Equal(t, tc.want, g.NodeIDs(), "%+v", tc.build)
	}

	con, err := config.BuildConfig{Mode: config.ModeFull, Nodes: 28, IDs: config.IDsExcel}.Constructor()
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, con)
	require.NoError(t, err)
	assert.True(t, g.HasNode("AB"))
}

func TestBuildConfig_LatencyDist(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	for _, dist := range []string{"", config.DistInt, config.DistUniform, config.DistNormal} {
		t.Run("dist="+dist, func(t *testing.T) {
			b := config.BuildConfig{Mode: config.ModeFull, Names: names, Seed: 9, LatencyMin: 10, LatencyMax: 40, LatencyDist: dist}
			con, err := b.Constructor()
			require.NoError(t, err)
			g, err := builder.BuildGraph(b.Options(), con)
			require.NoError(t, err)
			integral := true
			for _, e := range g.Edges() {
				v := e.Latency()
				assert.GreaterOrEqual(t, v, 0.0)
				if dist != config.DistNormal {
					assert.GreaterOrEqual(t, v, 10.0)
					assert.LessOrEqual(t, v, 40.0)
				}
				if v != float64(int(v)) {
					integral = false
				}
			}
			if dist == config.DistUniform {
				assert.False(t, integral, "continuous draws")
			} else {
				assert.True(t, integral, "whole milliseconds")
			}
		})
	}
}
