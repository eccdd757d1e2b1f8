package indices

import "github.com/terrane-gis/streamnet/network"

// Compute runs the downstream, Strahler, and upstream passes over g in
// order (spec §4.6).
//
// Complexity: O(L), L = number of links; the downstream and Strahler
// passes are Kahn-style topological traversals, and the upstream pass is
// a single visited-set walk from the outlet links.
func Compute(g *network.Graph) {
	downstreamPass(g)
	strahlerPass(g)
	upstreamPass(g)
}

// invertAdjacency rebuilds every Link's InflowingLinks from the fixed
// OutflowingLinks adjacency FlowOrientation produced, and returns a
// fresh in-degree count keyed by link id (spec §4.3: "rebuilt twice").
func invertAdjacency(g *network.Graph) map[int]int {
	inDegree := make(map[int]int, len(g.Links))
	for i := range g.Links {
		g.Links[i].InflowingLinks = g.Links[i].InflowingLinks[:0]
	}
	for i := range g.Links {
		l := &g.Links[i]
		for _, dID := range l.OutflowingLinks {
			g.Links[dID].InflowingLinks = append(g.Links[dID].InflowingLinks, l.ID)
			inDegree[dID]++
		}
	}

	return inDegree
}

// downstreamPass walks headwaters to outlets, accumulating TUCL,
// max-upstream-distance, and fractional Shreve order, splitting TUCL and
// Shreve order evenly across a diffluent link's outflow targets (each
// target takes the full max-upstream-distance), and assigning each link a
// tributary id by the furthest-head rule.
func downstreamPass(g *network.Graph) {
	inDegree := invertAdjacency(g)
	stack := make([]int, 0, len(g.Links))
	tribCounter := 0

	// A link lacking a valid outlet (a disconnected fragment) is still
	// seeded here if it is otherwise a zero-in-degree headwater: it
	// receives a tribId and accumulates tucl/maxUpstreamDist, but since
	// it never appears in any OutflowingLinks it cannot reach the
	// upstream pass and so never gets a horton/hack order.
	for i := range g.Links {
		l := &g.Links[i]
		if l.IsFeatureMapped && inDegree[l.ID] == 0 {
			l.ShreveOrder = 1
			tribCounter++
			l.TribID = tribCounter
			stack = append(stack, l.ID)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		l := &g.Links[id]

		l.TUCL += l.Length
		l.MaxUpstreamDist += l.Length

		k := float64(len(l.OutflowingLinks))
		for _, dID := range l.OutflowingLinks {
			d := &g.Links[dID]
			d.TUCL += l.TUCL / k
			d.ShreveOrder += l.ShreveOrder / k
			if l.MaxUpstreamDist > d.MaxUpstreamDist {
				d.MaxUpstreamDist = l.MaxUpstreamDist
			}

			inDegree[dID]--
			if inDegree[dID] == 0 {
				assignTribID(g, d)
				stack = append(stack, dID)
			}
		}
	}
}

// assignTribID gives d the tribId of its inflow with the greatest
// maxUpstreamDist — the furthest-head rule. A single inflow trivially
// wins its own comparison, so the same code path covers both the
// pass-through and branch-merge cases.
func assignTribID(g *network.Graph, d *network.Link) {
	best := d.InflowingLinks[0]
	for _, u := range d.InflowingLinks[1:] {
		if g.Links[u].MaxUpstreamDist > g.Links[best].MaxUpstreamDist {
			best = u
		}
	}
	d.TribID = g.Links[best].TribID
}

// strahlerPass assigns classical Strahler order and flags the mainstem:
// the chain of links whose tribId matches their outlet link's tribId.
func strahlerPass(g *network.Graph) {
	inDegree := invertAdjacency(g)
	stack := make([]int, 0, len(g.Links))

	for i := range g.Links {
		l := &g.Links[i]
		if l.IsFeatureMapped && inDegree[l.ID] == 0 {
			l.StrahlerOrder = 1
			stack = append(stack, l.ID)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		l := &g.Links[id]

		if l.OutletLinkID >= 0 && g.Links[l.OutletLinkID].TribID == l.TribID {
			l.IsMainstem = true
		}

		for _, dID := range l.OutflowingLinks {
			inDegree[dID]--
			if inDegree[dID] == 0 {
				assignStrahler(g, &g.Links[dID])
				stack = append(stack, dID)
			}
		}
	}
}

// assignStrahler applies the classical rule: order increases only when
// two (or more) inflows share the maximum order AND belong to distinct
// tributaries — two channels of the same braided stream reuniting does
// not bump the order.
func assignStrahler(g *network.Graph, d *network.Link) {
	if len(d.InflowingLinks) == 1 {
		d.StrahlerOrder = g.Links[d.InflowingLinks[0]].StrahlerOrder
		return
	}

	maxOrder := 0
	for _, u := range d.InflowingLinks {
		if o := g.Links[u].StrahlerOrder; o > maxOrder {
			maxOrder = o
		}
	}

	tribsAtMax := make(map[int]bool)
	for _, u := range d.InflowingLinks {
		if g.Links[u].StrahlerOrder == maxOrder {
			tribsAtMax[g.Links[u].TribID] = true
		}
	}

	d.StrahlerOrder = maxOrder
	if len(tribsAtMax) > 1 {
		d.StrahlerOrder++
	}
}

// upstreamPass walks outlets to headwaters, assigning Horton order
// (constant along a tributary, set to the Strahler order of the
// tributary's most downstream link — the outlet link for the mainstem)
// and Hack order (1 for the mainstem, incrementing by one at
// every tributary confluence encountered walking upstream).
func upstreamPass(g *network.Graph) {
	visited := make(map[int]bool, len(g.Links))
	stack := make([]int, 0, len(g.Links))

	for i := range g.Links {
		l := &g.Links[i]
		if l.IsOutletLink {
			l.HortonOrder = l.StrahlerOrder
			l.HackOrder = 1
			visited[l.ID] = true
			stack = append(stack, l.ID)
		}
	}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		l := &g.Links[id]

		for _, uID := range l.InflowingLinks {
			if visited[uID] {
				continue
			}
			u := &g.Links[uID]
			if u.TribID == l.TribID {
				u.HortonOrder = l.HortonOrder
				u.HackOrder = l.HackOrder
			} else {
				u.HortonOrder = u.StrahlerOrder
				u.HackOrder = l.HackOrder + 1
			}
			visited[uID] = true
			stack = append(stack, uID)
		}
	}
}
