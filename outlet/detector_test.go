package outlet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrane-gis/streamnet/demgrid"
	"github.com/terrane-gis/streamnet/network"
	"github.com/terrane-gis/streamnet/outlet"
)

func s1Dem(t *testing.T) *demgrid.Grid {
	t.Helper()
	data := []float64{-9999, 100, 99, 98, 97, 96, 95, 94, 93, 92}
	g, err := demgrid.NewGrid(1, 10, 0, 0.5, 1, 1, -9999, demgrid.Projected, data)
	require.NoError(t, err)

	return g
}

func TestSelectSeeds_BothNodataFallsBackToEndpoint1(t *testing.T) {
	dem := s1Dem(t)
	g := network.NewGraph(1, dem.DistMult())
	require.NoError(t, g.AddPolyline([][][2]float64{{{0, 0}, {5, 0}, {10, 0}}}, dem))

	q := outlet.SelectSeeds(g)
	require.Equal(t, 1, q.Len())

	epID, z, ok := q.Pop()
	require.True(t, ok)
	// Endpoint 0 is (0,0), over the nodata cell; endpoint 1 is (10,0),
	// off-grid (also nodata). Both rule-1 candidates are nodata here, so
	// the implementation falls back to endpoint 1 (spec §9 default).
	require.Equal(t, g.Links[0].Endpoint1, epID)
	require.Equal(t, g.Endpoints[epID].Z, z)
	require.True(t, g.Endpoints[epID].Outflowing)
}

func TestSelectSeeds_EqualZFallsBackToEndpoint1(t *testing.T) {
	// A link whose two endpoints are both valid edge cells with equal z:
	// rules 1 and 2 do not separate them, and rule 3 should retain endpoint 1.
	data := make([]float64, 9)
	for i := range data {
		data[i] = 50
	}
	dem, err := demgrid.NewGrid(3, 3, 0, 3, 1, 1, -9999, demgrid.Projected, data)
	require.NoError(t, err)

	g := network.NewGraph(1, dem.DistMult())
	// Both endpoints sit on the top row of a 3x3 all-valid grid, so both
	// are edge cells (which makes the link cross the DEM edge) and both
	// have the same elevation.
	require.NoError(t, g.AddPolyline([][][2]float64{{{0.5, 2.5}, {1.5, 2.5}}}, dem))

	q := outlet.SelectSeeds(g)
	require.Equal(t, 1, q.Len())
	epID, _, _ := q.Pop()
	require.Equal(t, g.Links[0].Endpoint1, epID)
}

func TestSelectSeeds_SkipsNonEdgeLinks(t *testing.T) {
	data := make([]float64, 9)
	for i := range data {
		data[i] = 50
	}
	dem, err := demgrid.NewGrid(3, 3, 0, 3, 1, 1, -9999, demgrid.Projected, data)
	require.NoError(t, err)

	g := network.NewGraph(1, dem.DistMult())
	// Interior link, fully surrounded by valid cells: not an edge crossing.
	require.NoError(t, g.AddPolyline([][][2]float64{{{1.5, 1.5}, {1.2, 1.2}}}, dem))

	q := outlet.SelectSeeds(g)
	require.Equal(t, 0, q.Len())
}
