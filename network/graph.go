package network

import (
	"math"

	"github.com/terrane-gis/streamnet/demgrid"
	"github.com/terrane-gis/streamnet/spatial"
)

// AddPolyline ingests one input polyline feature: one Link per part. Per
// spec §4.3:
//
//  1. Length is the sum of segment Euclidean distances, scaled by DistMult.
//  2. The DEM is sampled at every vertex; IsFeatureMapped is set if any
//     vertex lies on non-nodata data; CrossesDemEdge is set if the part
//     touches both valid data and (a nodata cell or an edge cell).
//  3. If mapped, the starting and ending vertices are registered as
//     Endpoints into the spatial index, carrying their DEM z sample.
//
// Complexity: O(sum of part vertex counts).
func (g *Graph) AddPolyline(parts [][][2]float64, dem *demgrid.Grid) error {
	for _, part := range parts {
		if len(part) < 2 {
			return ErrDegeneratePart
		}

		length := 0.0
		for i := 1; i < len(part); i++ {
			dx := part[i][0] - part[i-1][0]
			dy := part[i][1] - part[i-1][1]
			length += math.Hypot(dx, dy)
		}
		length *= g.DistMult

		hasValid, hasNodataOrEdge := false, false
		for _, v := range part {
			row, col := dem.RowColFromXY(v[0], v[1])
			val := dem.Value(row, col)
			if dem.IsNodata(val) {
				hasNodataOrEdge = true
				continue
			}
			hasValid = true
			if dem.IsEdgeCell(row, col) {
				hasNodataOrEdge = true
			}
		}
		isMapped := hasValid
		crossesEdge := hasValid && hasNodataOrEdge

		link := Link{
			ID:              len(g.Links),
			Endpoint1:       -1,
			Endpoint2:       -1,
			Length:          length,
			IsFeatureMapped: isMapped,
			CrossesDemEdge:  crossesEdge,
			Outlet:          -1,
			OutletLinkID:    -1,
		}

		if isMapped {
			start, end := part[0], part[len(part)-1]
			sRow, sCol := dem.RowColFromXY(start[0], start[1])
			eRow, eCol := dem.RowColFromXY(end[0], end[1])

			link.Endpoint1 = g.newEndpoint(link.ID, start[0], start[1], dem, sRow, sCol)
			link.Endpoint2 = g.newEndpoint(link.ID, end[0], end[1], dem, eRow, eCol)

			g.index.Insert(spatial.Point{start[0], start[1]}, link.Endpoint1)
			g.index.Insert(spatial.Point{end[0], end[1]}, link.Endpoint2)
		}

		g.Links = append(g.Links, link)
	}

	return nil
}

func (g *Graph) newEndpoint(linkID int, x, y float64, dem *demgrid.Grid, row, col int) int {
	z := dem.Value(row, col)
	id := len(g.Endpoints)
	g.Endpoints = append(g.Endpoints, Endpoint{
		ID:           id,
		LinkID:       linkID,
		X:            x,
		Y:            y,
		Z:            z,
		NodeID:       -1,
		NodataSample: dem.IsNodata(z),
		DemEdgeCell:  dem.IsEdgeCell(row, col),
	})

	return id
}

// AddLake registers a lake polygon's vertices into the lake spatial
// index. Only vertex coordinates are consumed (spec §6).
func (g *Graph) AddLake(vertices [][2]float64) error {
	if len(vertices) < 3 {
		return ErrDegenerateLake
	}
	if g.lakeIndex == nil {
		g.lakeIndex = spatial.NewIndex()
	}

	id := len(g.Lakes)
	g.Lakes = append(g.Lakes, Lake{ID: id, Vertices: vertices})
	for _, v := range vertices {
		g.lakeIndex.Insert(spatial.Point{v[0], v[1]}, id)
	}

	return nil
}

// CancelChecker is the narrow interface FormNodes polls for
// cancellation. emit.Reporter satisfies it; kept separate here so
// network need not import emit.
type CancelChecker interface {
	CancelRequested() bool
}

// FormNodes performs the node-formation pass of spec §4.3: endpoints are
// walked in id order; each unvisited endpoint queries the spatial index
// at its own coordinate within SnapRadiusSq, and either joins a lake's
// node, a fresh singleton node, or a fresh node containing every endpoint
// the query returned.
//
// rep is polled once per endpoint, one of the three cancellation
// boundaries spec §5 names; a nil rep disables the check. On
// cancellation FormNodes returns ErrCancelled with whatever nodes were
// already formed left in place.
//
// Complexity: O(E * query cost), E = number of endpoints.
func (g *Graph) FormNodes(useLakes bool, rep CancelChecker) error {
	visited := make([]bool, len(g.Endpoints))
	for i := range g.Endpoints {
		if rep != nil && rep.CancelRequested() {
			return ErrCancelled
		}
		if visited[i] {
			continue
		}
		e := &g.Endpoints[i]
		results := g.index.NeighborsWithinRange(spatial.Point{e.X, e.Y}, g.SnapRadiusSq)

		if len(results) == 1 && useLakes && !e.Outflowing {
			if lakeID, ok := g.nearestLake(e.X, e.Y); ok {
				g.attachToLakeNode(lakeID, e.ID)
				visited[i] = true
				continue
			}
		}

		nodeID := len(g.Nodes)
		members := make([]int, 0, len(results))
		for _, r := range results {
			members = append(members, r.Payload)
			g.Endpoints[r.Payload].NodeID = nodeID
			visited[r.Payload] = true
		}
		g.Nodes = append(g.Nodes, Node{ID: nodeID, Endpoints: members})
	}

	return nil
}

// nearestLake returns the id of the nearest lake with a vertex within
// SnapRadiusSq of (x,y), if any.
func (g *Graph) nearestLake(x, y float64) (int, bool) {
	if g.lakeIndex == nil {
		return 0, false
	}
	results := g.lakeIndex.NeighborsWithinRange(spatial.Point{x, y}, g.SnapRadiusSq)
	if len(results) == 0 {
		return 0, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.DistSq < best.DistSq {
			best = r
		}
	}

	return best.Payload, true
}

// attachToLakeNode attaches endpointID to lakeID's node, creating that
// node on first touch. Each lake owns at most one node (spec §3).
func (g *Graph) attachToLakeNode(lakeID, endpointID int) {
	nodeID, ok := g.lakeNodeOf[lakeID]
	if !ok {
		nodeID = len(g.Nodes)
		g.Nodes = append(g.Nodes, Node{ID: nodeID, IsLake: true, LakeID: lakeID})
		g.lakeNodeOf[lakeID] = nodeID
	}
	g.Nodes[nodeID].Endpoints = append(g.Nodes[nodeID].Endpoints, endpointID)
	g.Endpoints[endpointID].NodeID = nodeID
}

// NodeEndpoints returns the endpoint ids occupying nodeID.
func (g *Graph) NodeEndpoints(nodeID int) []int {
	return g.Nodes[nodeID].Endpoints
}

// OtherEndpoint returns the endpoint id of linkID's other end, given one
// of its two endpoint ids.
func (g *Graph) OtherEndpoint(linkID, endpointID int) int {
	l := &g.Links[linkID]
	if l.Endpoint1 == endpointID {
		return l.Endpoint2
	}

	return l.Endpoint1
}
