package indices_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/terrane-gis/streamnet/indices"
	"github.com/terrane-gis/streamnet/network"
)

// link builds a minimal oriented Link; fields orientation would have
// set (Outlet, OutletLinkID, IsOutletLink, OutflowingLinks) are passed
// explicitly so indices.Compute can be tested independent of flow.
func link(id int, length float64, outlet, outletLinkID int, isOutletLink bool, outflow ...int) network.Link {
	return network.Link{
		ID: id, Length: length, IsFeatureMapped: true,
		Outlet: outlet, OutletLinkID: outletLinkID, IsOutletLink: isOutletLink,
		OutflowingLinks: outflow,
	}
}

func TestCompute_SingleOutletLink(t *testing.T) {
	// spec's S1: one link that is both headwater and outlet.
	g := &network.Graph{Links: []network.Link{
		link(0, 10, 0, 0, true),
	}}

	indices.Compute(g)

	l := g.Links[0]
	require.Equal(t, 10.0, l.TUCL)
	require.Equal(t, 10.0, l.MaxUpstreamDist)
	require.Equal(t, 1.0, l.ShreveOrder)
	require.Equal(t, 1, l.StrahlerOrder)
	require.Equal(t, 1, l.HortonOrder)
	require.Equal(t, 1, l.HackOrder)
	require.True(t, l.IsMainstem)
	require.Equal(t, 0.0, l.DistToOutlet, "the outlet link's own distance to itself is zero")
}

func TestCompute_YJunction(t *testing.T) {
	// spec's S2: two headwaters of different length join a short trunk
	// that is itself the outlet link.
	const (
		head1 = 0
		head2 = 1
		trunk = 2
	)
	g := &network.Graph{Links: []network.Link{
		link(head1, 5, 0, trunk, false, trunk),
		link(head2, 7, 0, trunk, false, trunk),
		link(trunk, 3, 0, trunk, true),
	}}

	indices.Compute(g)

	require.Equal(t, 1, g.Links[head1].StrahlerOrder)
	require.Equal(t, 1, g.Links[head2].StrahlerOrder)
	require.Equal(t, 2, g.Links[trunk].StrahlerOrder)

	require.Equal(t, 2.0, g.Links[trunk].ShreveOrder)

	require.True(t, g.Links[trunk].IsMainstem)
	require.NotEqual(t, g.Links[head1].IsMainstem, g.Links[head2].IsMainstem,
		"exactly one headwater is mainstem: the one with greater maxUpstreamDist")
	require.True(t, g.Links[head2].IsMainstem, "head2 has the longer length and so the greater maxUpstreamDist")

	require.Equal(t, g.Links[trunk].StrahlerOrder, g.Links[trunk].HortonOrder)
	require.Equal(t, 1, g.Links[trunk].HackOrder)
	require.Equal(t, 1, g.Links[head2].HackOrder, "the mainstem headwater inherits the trunk's hack order")
	require.Equal(t, 2, g.Links[head1].HackOrder, "the side headwater starts a new hack chain")
}

func TestCompute_DiffluenceSplitsShreveAndTucl(t *testing.T) {
	// One headwater splits into two downstream links at a diffluence.
	const (
		up = 0
		a  = 1
		b  = 2
	)
	g := &network.Graph{Links: []network.Link{
		link(up, 10, 0, a, false, a, b),
		link(a, 4, 0, a, true),
		link(b, 6, 0, a, false),
	}}

	indices.Compute(g)

	require.Equal(t, 0.5, g.Links[a].ShreveOrder)
	require.Equal(t, 0.5, g.Links[b].ShreveOrder)
	// Each branch inherits half of up's tucl (10/2 = 5), plus its own length.
	require.Equal(t, 9.0, g.Links[a].TUCL)
	require.Equal(t, 11.0, g.Links[b].TUCL)
}

func TestCompute_DisconnectedFragmentGetsTribIDButNoHortonHack(t *testing.T) {
	g := &network.Graph{Links: []network.Link{
		{ID: 0, Length: 4, IsFeatureMapped: true, Outlet: -1, OutletLinkID: -1},
	}}

	indices.Compute(g)

	l := g.Links[0]
	require.Equal(t, 4.0, l.TUCL)
	require.NotZero(t, l.TribID)
	require.Zero(t, l.HortonOrder)
	require.Zero(t, l.HackOrder)
}
