package flow

import (
	"github.com/terrane-gis/streamnet/emit"
	"github.com/terrane-gis/streamnet/network"
	"github.com/terrane-gis/streamnet/outlet"
)

// Orient drains q, orienting every reachable Link in g: assigning
// Outlet, OutletLinkID, IsOutletLink, NumDownstreamNodes, DistToOutlet,
// and OutflowingLinks (spec §4.5). It returns the node events
// (outlets, diffluences, joined heads) accumulated along the way, in
// the order they occurred.
//
// A Link's Outlet, OutletLinkID, NumDownstreamNodes and DistToOutlet are
// written at most once each (first-assignment-wins, spec §9): the flood
// reaches every link by its z-lowest path first because q is drained in
// ascending-z order, so the first write is always the correct one and
// later re-discoveries of an already-oriented link are diffluence events
// (which append a second OutflowingLinks entry) or joined-head events
// instead of overwrites.
//
// Links never reached by the flood (disconnected fragments with no
// path to a seeded outlet) retain Outlet == -1 and are reported by
// package emit as discontinuous.
//
// Complexity: O(E log E), E = number of endpoints; each endpoint is
// popped once and each push is O(log E).
func Orient(g *network.Graph, q *outlet.Queue, rep emit.Reporter) ([]emit.NodeEvent, error) {
	if rep == nil {
		rep = emit.NoopReporter{}
	}

	var events []emit.NodeEvent
	outletNumber := 0
	popped := 0

	for {
		if rep.CancelRequested() {
			return nil, ErrCancelled
		}

		eID, _, ok := q.Pop()
		if !ok {
			break
		}
		popped++
		pct := 100 * float64(popped) / float64(len(g.Endpoints))
		if pct > 100 {
			pct = 100
		}
		rep.Progress("flow-orientation", pct)

		e := &g.Endpoints[eID]
		l := &g.Links[e.LinkID]

		if l.Outlet == -1 {
			l.Outlet = outletNumber
			l.OutletLinkID = l.ID
			l.IsOutletLink = true
			outletNumber++
			events = append(events, emit.NodeEvent{NodeID: e.NodeID, Type: emit.NodeTypeOutlet})
		}

		// Endpoints coincident with e: links terminating at the same point
		// (a shared outlet location, or a link whose downstream end feeds
		// directly into e's node without an intervening upstream walk).
		// Propagation only; diffluence/joined-head classification belongs
		// to the upstream-node visit below, where siblings genuinely
		// compete for the same downstream target.
		propagate(g, q, l, e.NodeID)

		// The upstream end of l: links flowing into l from further inland.
		eStarID := g.OtherEndpoint(l.ID, eID)
		eStar := &g.Endpoints[eStarID]
		events = propagateAndClassify(g, q, l, eStar.NodeID, events)
	}

	return events, nil
}

// propagate orients every not-yet-oriented link sharing nodeID,
// treating l as the already-oriented downstream neighbor they empty
// into, and enqueues their coincident endpoints to continue the flood.
func propagate(g *network.Graph, q *outlet.Queue, l *network.Link, nodeID int) {
	for _, epID := range g.NodeEndpoints(nodeID) {
		ep := &g.Endpoints[epID]
		l2 := &g.Links[ep.LinkID]

		if l2.Outlet == -1 {
			l2.Outlet = l.Outlet
			l2.OutletLinkID = l.OutletLinkID
			l2.NumDownstreamNodes = l.NumDownstreamNodes + 1
			l2.DistToOutlet = l.DistToOutlet + l2.Length
			l2.OutflowingLinks = append(l2.OutflowingLinks, l.ID)
			ep.Outflowing = true
			q.Push(epID, ep.Z)
		}
	}
}

// propagateAndClassify is propagate's upstream-side counterpart: each
// endpoint takes exactly one branch of the switch, so a link propagated
// onto at that endpoint is not also tested as an already-oriented
// sibling in the same step, and the diffluence branch only fires for an
// endpoint already marked Outflowing.
func propagateAndClassify(g *network.Graph, q *outlet.Queue, l *network.Link, nodeID int, prior []emit.NodeEvent) []emit.NodeEvent {
	events := prior

	for _, epID := range g.NodeEndpoints(nodeID) {
		ep := &g.Endpoints[epID]
		l2 := &g.Links[ep.LinkID]

		switch {
		case l2.Outlet == -1:
			l2.Outlet = l.Outlet
			l2.OutletLinkID = l.OutletLinkID
			l2.NumDownstreamNodes = l.NumDownstreamNodes + 1
			l2.DistToOutlet = l.DistToOutlet + l2.Length
			l2.OutflowingLinks = append(l2.OutflowingLinks, l.ID)
			ep.Outflowing = true
			q.Push(epID, ep.Z)

		case l2.Outlet == l.Outlet && ep.LinkID != l.ID && ep.Outflowing:
			l2.OutflowingLinks = append(l2.OutflowingLinks, l.ID)
			events = append(events, emit.NodeEvent{NodeID: nodeID, Type: emit.NodeTypeDiffluence})

		case l2.Outlet != l.Outlet && !l2.IsOutletLink:
			events = append(events, emit.NodeEvent{NodeID: nodeID, Type: emit.NodeTypeJoinedHead})
		}
	}

	return events
}
