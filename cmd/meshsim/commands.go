// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/dfs"
	"github.com/katalvlaran/lvmesh/dijkstra"
	"github.com/katalvlaran/lvmesh/failure"
	"github.com/katalvlaran/lvmesh/matrix"
	"github.com/katalvlaran/lvmesh/resilience"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the configured topology and list its links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())
			return writeEdges(out, g)
		},
	}
}

func newRouteCmd(a *app) *cobra.Command {
	var (
		failNodes []string
		all       bool
		cutoff    int
	)
	cmd := &cobra.Command{
		Use:   "route SOURCE TARGET",
		Short: "Print the minimum-latency route, optionally after failures",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}
			sim := failure.New(g, failure.WithLogger(a.log), failure.WithCollector(a.collector))
			for _, id := range failNodes {
				sim.FailNode(id)
			}
			view := sim.View()
			out := cmd.OutOrStdout()

			p, err := dijkstra.ShortestPath(view, args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s latency=%g hops=%d\n", strings.Join(p.Nodes, " -> "), p.Latency, p.Hops())

			if !all {
				return nil
			}
			if cutoff <= 0 {
				cutoff = view.NodeCount()
			}
			paths, err := dfs.AllSimplePaths(view, args[0], args[1], cutoff, dfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			for _, q := range paths {
				fmt.Fprintf(out, "  %s latency=%g\n", strings.Join(q.Nodes, " -> "), q.Latency)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&failNodes, "fail-node", nil, "routers to fail before routing")
	cmd.Flags().BoolVar(&all, "all", false, "also list every simple path")
	cmd.Flags().IntVar(&cutoff, "cutoff", 0, "hop cutoff for --all (default node count)")
	return cmd
}

func newFailCmd(a *app) *cobra.Command {
	var (
		nodes, links []string
		from         string
		hops         int
	)
	cmd := &cobra.Command{
		Use:   "fail",
		Short: "Inject failures and report network health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}
			sim := failure.New(g, failure.WithLogger(a.log), failure.WithCollector(a.collector))
			for _, id := range nodes {
				sim.FailNode(id)
			}
			for _, l := range links {
				pair := strings.SplitN(l, ":", 2)
				if len(pair) != 2 {
					return fmt.Errorf("fail: link %q: want A:B: %w", l, core.ErrInvalidConfiguration)
				}
				sim.FailEdge(pair[0], pair[1])
			}

			h := resilience.SimulationHealth(sim)
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "active nodes\t%d/%d (%.1f%%)\n", h.ActiveNodes, h.TotalNodes, h.ActivePercentage)
			fmt.Fprintf(tw, "connected\t%v\n", h.IsConnected)
			fmt.Fprintf(tw, "components\t%d\n", h.Components)
			fmt.Fprintf(tw, "failed nodes\t%d\n", h.FailedNodes)
			fmt.Fprintf(tw, "failed links\t%d\n", h.FailedLinks)
			fmt.Fprintf(tw, "mesh valid\t%v\n", resilience.IsMeshValid(sim.View(), a.cfg.Analysis.MinDegree))
			if h.Components > 1 {
				for i, part := range h.Partitions {
					fmt.Fprintf(tw, "partition %d\t%s\n", i+1, strings.Join(part, " "))
				}
			}
			if from != "" {
				r, err := resilience.SimulationReachability(cmd.Context(), sim, from, hops)
				if err != nil {
					return err
				}
				for i, layer := range r.Layers[1:] {
					fmt.Fprintf(tw, "hop %d\t%s\n", i+1, strings.Join(layer, " "))
				}
				fmt.Fprintf(tw, "cut from %s\t%v\n", from, r.Cut)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&nodes, "node", nil, "routers to fail")
	cmd.Flags().StringSliceVar(&links, "link", nil, "links to fail, as A:B")
	cmd.Flags().StringVar(&from, "from", "", "list routers reachable from this router, by hop count")
	cmd.Flags().IntVar(&hops, "hops", 0, "stop --from after this many hops (0 = no limit)")
	return cmd
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		exact       bool
		showMetrics bool
		showMatrix  bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Report mesh metrics for the configured topology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.build()
			if err != nil {
				return err
			}
			var opts []resilience.Option
			if a.cfg.Analysis.LatencyWeights {
				opts = append(opts, resilience.WithLatencyWeights())
			}
			opts = append(opts, resilience.WithLogger(a.log))
			m := resilience.MeshMetrics(g, opts...)

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "mesh valid (min degree %d)\t%v\n", a.cfg.Analysis.MinDegree, resilience.IsMeshValid(g, a.cfg.Analysis.MinDegree))
			fmt.Fprintf(tw, "connected\t%v\n", m.IsConnected)
			fmt.Fprintf(tw, "min degree\t%d\n", m.MinDegree)
			fmt.Fprintf(tw, "avg degree\t%.2f\n", m.AvgDegree)
			fmt.Fprintf(tw, "redundancy ratio\t%.2f\n", m.RedundancyRatio)
			fmt.Fprintf(tw, "diameter\t%g\n", m.Diameter)
			fmt.Fprintf(tw, "average path length\t%.2f\n", m.AveragePathLength)
			fmt.Fprintf(tw, "node fault tolerance\t%d\n", m.NodeFaultTolerance)
			fmt.Fprintf(tw, "backbone latency\t%gms\n", m.BackboneLatency)
			fmt.Fprintf(tw, "spare links\t%d\n", m.SpareLinks)

			if exact || a.cfg.Analysis.Exact {
				c, err := resilience.ExactConnectivity(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "node connectivity\t%d\n", c.Node)
				fmt.Fprintf(tw, "edge connectivity\t%d\n", c.Edge)
				fmt.Fprintf(tw, "single points of failure\t%v\n", resilience.SinglePointsOfFailure(g))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if showMatrix {
				if err := writeMatrix(out, g); err != nil {
					return err
				}
			}
			if showMetrics {
				return a.collector.WriteText(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "add max-flow connectivity and articulation points")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print the Prometheus gauges and counters")
	cmd.Flags().BoolVar(&showMatrix, "matrix", false, "print the all-pairs latency matrix")
	return cmd
}

func writeEdges(w io.Writer, g core.Reader) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range g.Edges() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%gms\n", e.ID, e.A, e.B, e.Latency())
	}
	return tw.Flush()
}

// writeMatrix prints the all-pairs latency table; "-" marks unreachable pairs.
func writeMatrix(w io.Writer, g core.Reader) error {
	all, err := matrix.AllPairs(g)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(all.IDs, "\t"))
	for i, id := range all.IDs {
		fmt.Fprintf(tw, "%s\t", id)
		for j := range all.IDs {
			v, _ := all.D.At(i, j)
			if math.IsInf(v, 1) {
				fmt.Fprint(tw, "-\t")
				continue
			}
			fmt.Fprintf(tw, "%g\t", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
