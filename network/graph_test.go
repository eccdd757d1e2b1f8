package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrane-gis/streamnet/demgrid"
	"github.com/terrane-gis/streamnet/network"
)

// s1Dem builds the boundary scenario S1 raster from spec.md: a 10x1 grid,
// leftmost cell nodata, remaining cells elevation 100..92.
func s1Dem(t *testing.T) *demgrid.Grid {
	t.Helper()
	data := []float64{-9999, 100, 99, 98, 97, 96, 95, 94, 93, 92}
	g, err := demgrid.NewGrid(1, 10, 0, 0.5, 1, 1, -9999, demgrid.Projected, data)
	require.NoError(t, err)

	return g
}

func TestAddPolyline_SingleStraightStream(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(1, dem.DistMult())

	err := g.AddPolyline([][][2]float64{{{0, 0}, {5, 0}, {10, 0}}}, dem)
	require.NoError(t, err)

	require.Len(t, g.Links, 1)
	l := g.Links[0]
	require.True(t, l.IsFeatureMapped)
	require.True(t, l.CrossesDemEdge)
	require.InDelta(t, 10.0, l.Length, 1e-9)
	require.Len(t, g.Endpoints, 2)
}

func TestAddPolyline_DegeneratePart(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(1, dem.DistMult())
	err := g.AddPolyline([][][2]float64{{{0, 0}}}, dem)
	require.ErrorIs(t, err, network.ErrDegeneratePart)
}

func TestAddPolyline_UnmappedLink(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(1, dem.DistMult())
	// Entirely over the nodata cell (x in [0,1)).
	err := g.AddPolyline([][][2]float64{{{0.1, 0.5}, {0.2, 0.5}}}, dem)
	require.NoError(t, err)
	require.False(t, g.Links[0].IsFeatureMapped)
	require.Empty(t, g.Endpoints)
}

func TestFormNodes_SnapsCoincidentEndpoints(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(2, dem.DistMult())

	// Two parts sharing an endpoint near (5,0.5): a Y-junction head.
	require.NoError(t, g.AddPolyline([][][2]float64{{{1, 0.5}, {5, 0.5}}}, dem))
	require.NoError(t, g.AddPolyline([][][2]float64{{{5.5, 0.5}, {9, 0.5}}}, dem))

	require.NoError(t, g.FormNodes(false, nil))

	// Endpoint at (5,0.5) and (5.5,0.5) are within snap distance 2 and
	// should land in the same node; the far ends (1,0.5) and (9,0.5) are
	// isolated singleton nodes.
	require.Len(t, g.Nodes, 3)

	joinNode := g.Endpoints[1].NodeID
	require.Equal(t, joinNode, g.Endpoints[2].NodeID)
	require.Len(t, g.NodeEndpoints(joinNode), 2)
}

func TestFormNodes_LakeAttachment(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(1, dem.DistMult())
	require.NoError(t, g.AddLake([][2]float64{{5, 0.4}, {6, 0.4}, {5.5, 0.8}}))

	// A single stream endpoint lands right next to the lake, with no other
	// stream endpoint nearby.
	require.NoError(t, g.AddPolyline([][][2]float64{{{1, 0.5}, {5.2, 0.5}}}, dem))

	require.NoError(t, g.FormNodes(true, nil))

	require.Len(t, g.Nodes, 2)
	lakeNode := g.Endpoints[1].NodeID
	require.True(t, g.Nodes[lakeNode].IsLake)
}

type cancelingChecker struct{}

func (cancelingChecker) CancelRequested() bool { return true }

func TestFormNodes_CancellationStopsPromptly(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(2, dem.DistMult())
	require.NoError(t, g.AddPolyline([][][2]float64{{{1, 0.5}, {5, 0.5}}}, dem))
	require.NoError(t, g.AddPolyline([][][2]float64{{{5.5, 0.5}, {9, 0.5}}}, dem))

	err := g.FormNodes(false, cancelingChecker{})
	require.ErrorIs(t, err, network.ErrCancelled)
	require.Empty(t, g.Nodes)
}

func TestOtherEndpoint(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(1, dem.DistMult())
	require.NoError(t, g.AddPolyline([][][2]float64{{{1, 0.5}, {5, 0.5}}}, dem))
	require.Equal(t, g.Links[0].Endpoint2, g.OtherEndpoint(0, g.Links[0].Endpoint1))
	require.Equal(t, g.Links[0].Endpoint1, g.OtherEndpoint(0, g.Links[0].Endpoint2))
}
