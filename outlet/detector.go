package outlet

import "github.com/terrane-gis/streamnet/network"

// SelectSeeds classifies every Link with CrossesDemEdge=true, choosing
// one of its two endpoints as the outlet seed per the package doc's
// priority rules, marking it Outflowing and staging it in the returned
// Queue keyed by z (lowest first).
//
// Complexity: O(L), L = number of links.
func SelectSeeds(g *network.Graph) *Queue {
	q := NewQueue()
	for i := range g.Links {
		l := &g.Links[i]
		if !l.CrossesDemEdge {
			continue
		}

		ep1 := &g.Endpoints[l.Endpoint1]
		ep2 := &g.Endpoints[l.Endpoint2]
		seedID := selectSeed(ep1, ep2)

		g.Endpoints[seedID].Outflowing = true
		q.Push(seedID, g.Endpoints[seedID].Z)
	}

	return q
}

// selectSeed applies the three priority rules in order, falling back to
// ep1 when none distinguishes the pair (spec §9's documented default for
// the equal-z and both-nodata cases).
func selectSeed(ep1, ep2 *network.Endpoint) int {
	switch {
	case ep1.NodataSample && !ep2.NodataSample:
		return ep1.ID
	case ep2.NodataSample && !ep1.NodataSample:
		return ep2.ID
	case !ep1.NodataSample && !ep2.NodataSample && ep1.DemEdgeCell && !ep2.DemEdgeCell:
		return ep1.ID
	case !ep1.NodataSample && !ep2.NodataSample && ep2.DemEdgeCell && !ep1.DemEdgeCell:
		return ep2.ID
	case !ep1.NodataSample && !ep2.NodataSample && ep2.Z < ep1.Z:
		return ep2.ID
	default:
		return ep1.ID
	}
}
