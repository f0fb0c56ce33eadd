// SPDX-License-Identifier: MIT
package flow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/core"
	"github.com/katalvlaran/lvmesh/flow"
)

// ConnectivitySuite groups the pairwise and global connectivity tests.
type ConnectivitySuite struct {
	suite.Suite
	ctx context.Context
}

func (s *ConnectivitySuite) SetupTest() {
	s.ctx = context.Background()
}

func link(t require.TestingT, g *core.Graph, pairs ...[2]string) {
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], core.EdgeAttrs{Latency: 1})
		require.NoError(t, err)
	}
}

// bowtie: triangles A-B-C and C-D-E joined at C.
func bowtie(t require.TestingT) *core.Graph {
	g := core.NewGraph()
	link(t, g,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "A"},
		[2]string{"C", "D"}, [2]string{"D", "E"}, [2]string{"E", "C"},
	)
	return g
}

func (s *ConnectivitySuite) TestFullMesh() {
	g, err := builder.BuildGraph(nil, builder.FullMesh([]string{"A", "B", "C", "D"}))
	require.NoError(s.T(), err)

	e, err := flow.EdgeConnectivity(g, "A", "D", flow.WithContext(s.ctx))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, e)

	v, err := flow.NodeConnectivity(g, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, v, "direct link plus two detours")

	ge, err := flow.GlobalEdgeConnectivity(g)
	require.NoError(s.T(), err)
	gv, err := flow.GlobalNodeConnectivity(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, ge)
	require.Equal(s.T(), 3, gv)
}

func (s *ConnectivitySuite) TestBowtie() {
	g := bowtie(s.T())

	e, err := flow.EdgeConnectivity(g, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, e, "A-C-D and A-B-C-E-D share no link")

	v, err := flow.NodeConnectivity(g, "A", "D")
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, v, "every route crosses C")

	gv, err := flow.GlobalNodeConnectivity(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, gv)

	ge, err := flow.GlobalEdgeConnectivity(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, ge)
}

func (s *ConnectivitySuite) TestRingAndPartialMesh() {
	ring, err := builder.BuildGraph(nil, builder.PartialMesh([]string{"A", "B", "C", "D", "E", "F"}, 2))
	require.NoError(s.T(), err)
	ge, err := flow.GlobalEdgeConnectivity(ring)
	require.NoError(s.T(), err)
	gv, err := flow.GlobalNodeConnectivity(ring)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, ge)
	require.Equal(s.T(), 2, gv)

	mesh, err := builder.BuildGraph(nil, builder.PartialMesh([]string{"A", "B", "C", "D", "E", "F"}, 3))
	require.NoError(s.T(), err)
	gv, err = flow.GlobalNodeConnectivity(mesh)
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), gv, 2)
	require.LessOrEqual(s.T(), gv, 3, "bounded by the minimum degree")
}

func (s *ConnectivitySuite) TestDisconnectedAndTiny() {
	g := core.NewGraph()
	link(s.T(), g, [2]string{"A", "B"}, [2]string{"C", "D"})

	e, err := flow.EdgeConnectivity(g, "A", "D")
	require.NoError(s.T(), err)
	require.Zero(s.T(), e)

	ge, err := flow.GlobalEdgeConnectivity(g)
	require.NoError(s.T(), err)
	require.Zero(s.T(), ge)
	gv, err := flow.GlobalNodeConnectivity(g)
	require.NoError(s.T(), err)
	require.Zero(s.T(), gv)

	single := core.NewGraph()
	_, _ = single.AddNode("A", core.NodeAttrs{})
	gv, err = flow.GlobalNodeConnectivity(single)
	require.NoError(s.T(), err)
	require.Zero(s.T(), gv)
	ge, err = flow.GlobalEdgeConnectivity(core.NewGraph())
	require.NoError(s.T(), err)
	require.Zero(s.T(), ge)
}

func (s *ConnectivitySuite) TestErrors() {
	g := bowtie(s.T())

	_, err := flow.EdgeConnectivity(nil, "A", "B")
	require.ErrorIs(s.T(), err, flow.ErrGraphNil)

	_, err = flow.EdgeConnectivity(g, "X", "A")
	require.True(s.T(), errors.Is(err, flow.ErrSourceNotFound))
	require.True(s.T(), errors.Is(err, core.ErrNotFound))

	_, err = flow.NodeConnectivity(g, "A", "Z")
	require.True(s.T(), errors.Is(err, flow.ErrSinkNotFound))

	_, err = flow.NodeConnectivity(g, "A", "A")
	require.True(s.T(), errors.Is(err, core.ErrInvalidConfiguration))
}

func (s *ConnectivitySuite) TestCanceledContext() {
	g := bowtie(s.T())
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := flow.EdgeConnectivity(g, "A", "D", flow.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestReadOnly checks that the input store is never modified.
func (s *ConnectivitySuite) TestReadOnly() {
	g := bowtie(s.T())
	before := g.Edges()
	_, err := flow.GlobalNodeConnectivity(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, g.Edges())
}

func TestConnectivitySuite(t *testing.T) {
	suite.Run(t, new(ConnectivitySuite))
}
