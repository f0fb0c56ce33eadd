// SPDX-License-Identifier: MIT

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/config"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/logging"
	"github.com/katalvlaran/lvmesh/metrics"
)

// app is the per-invocation state shared by subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg       config.Config
	log       *zap.Logger
	collector *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "meshsim",
		Short:         "Build, route, break and analyze mesh network topologies.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./meshsim.yaml)")
	pf.String("mode", "", "topology mode: random, full, partial, custom, ring, star or grid")
	pf.Int("nodes", 0, "node count for random meshes and generated names")
	pf.Int("degree", 0, "target average degree for random meshes")
	pf.StringSlice("names", nil, "router names for the named shapes")
	pf.Int("min-degree", 0, "partial mesh minimum degree")
	pf.Int("columns", 0, "grid width (0 picks the square root)")
	pf.Int64("seed", 0, "random seed")
	pf.String("latency-dist", "", "latency draw: int, uniform or normal")
	pf.String("ids", "", "generated router IDs: node, symbol or excel")
	pf.String("topology", "", "topology YAML file for custom mode")
	pf.String("log-level", "", "log level")
	pf.String("log-format", "", "log format: console or json")

	for key, flag := range map[string]string{
		"build.mode":         "mode",
		"build.nodes":        "nodes",
		"build.degree":       "degree",
		"build.names":        "names",
		"build.min_degree":   "min-degree",
		"build.columns":      "columns",
		"build.seed":         "seed",
		"build.latency_dist": "latency-dist",
		"build.ids":          "ids",
		"build.topology":     "topology",
		"logging.level":      "log-level",
		"logging.format":     "log-format",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newBuildCmd(a),
		newRouteCmd(a),
		newFailCmd(a),
		newAnalyzeCmd(a),
	)
	return root
}

func (a *app) init() error {
	cfg, err := config.LoadViper(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	col, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	a.cfg, a.log, a.collector = cfg, log, col
	return nil
}

// build constructs the configured topology and records the edge shortfall
// of random meshes.
func (a *app) build() (*core.Graph, error) {
	b := a.cfg.Build
	con, err := b.Constructor()
	if err != nil {
		return nil, err
	}
	opts := append(b.Options(), builder.WithLogger(a.log))
	g, err := builder.BuildGraph(opts, con)
	if err != nil {
		return nil, err
	}
	if b.Mode == config.ModeRandom {
		a.collector.ObserveBuild(builder.TargetEdges(b.Nodes, b.Degree), g.EdgeCount())
	}
	a.collector.SetTopology(g.NodeCount(), g.EdgeCount())
	a.log.Info("topology ready",
		zap.String("mode", b.Mode),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
	)
	return g, nil
}
