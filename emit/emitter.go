package emit

import (
	"math"

	"github.com/terrane-gis/streamnet/network"
)

// round3 rounds v to three decimal places (spec §6 field precision).
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// EmitLinks produces one LinkRecord per mapped Link, in Link.ID order,
// with sequential FIDs starting at 0. Unmapped links receive no record
// (spec §7).
//
// Complexity: O(L).
func EmitLinks(g *network.Graph, rep Reporter) []LinkRecord {
	if rep == nil {
		rep = NoopReporter{}
	}

	records := make([]LinkRecord, 0, len(g.Links))
	for _, l := range g.Links {
		if !l.IsFeatureMapped {
			continue
		}

		rec := LinkRecord{
			FID:             len(records),
			Outlet:          l.Outlet,
			TUCL:            round3(l.TUCL),
			MaxUpstreamDist: round3(l.MaxUpstreamDist),
			DSNodes:         l.NumDownstreamNodes,
			Dist2Mouth:      round3(l.DistToOutlet),
			Horton:          l.HortonOrder,
			Strahler:        l.StrahlerOrder,
			Shreve:          round3(l.ShreveOrder),
			Hack:            l.HackOrder,
			Mainstem:        boolToInt(l.IsMainstem),
			TribID:          l.TribID,
			Discontinuous:   boolToInt(l.Outlet == -1),
		}
		records = append(records, rec)
		rep.ReturnRecord("link", rec)
	}

	return records
}

// EmitNodes assigns sequential FIDs to the node events accumulated during
// flow orientation, in the order they were recorded.
//
// Complexity: O(N), N = len(events).
func EmitNodes(events []NodeEvent, rep Reporter) []NodeRecord {
	if rep == nil {
		rep = NoopReporter{}
	}

	records := make([]NodeRecord, 0, len(events))
	for _, ev := range events {
		rec := NodeRecord{FID: len(records), NodeID: ev.NodeID, Type: ev.Type}
		records = append(records, rec)
		rep.ReturnRecord("node", rec)
	}

	return records
}
