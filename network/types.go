package network

import "github.com/terrane-gis/streamnet/spatial"

// Endpoint is one polyline part's starting or ending vertex.
type Endpoint struct {
	ID         int
	LinkID     int
	X, Y, Z    float64
	NodeID     int
	Outflowing bool

	// NodataSample and DemEdgeCell cache the DEM classification of this
	// endpoint's cell at construction time (spec §4.4 reads them, but the
	// DEM itself is not retained by the arena past construction).
	NodataSample bool
	DemEdgeCell  bool
}

// Link is one part of one input polyline feature — a single arc in the
// network.
type Link struct {
	ID                 int
	Endpoint1, Endpoint2 int
	Length             float64
	IsFeatureMapped    bool
	CrossesDemEdge     bool

	// Populated by outlet/flow.
	Outlet             int // -1 until assigned
	OutletLinkID       int // -1 until assigned
	IsOutletLink       bool
	NumDownstreamNodes int
	DistToOutlet       float64

	// Populated by flow (adjacency) and indices (orders).
	OutflowingLinks []int
	InflowingLinks  []int
	TUCL            float64
	MaxUpstreamDist float64
	HortonOrder     int
	StrahlerOrder   int
	ShreveOrder     float64
	HackOrder       int
	TribID          int
	IsMainstem      bool
}

// Node is a spatial equivalence class of endpoints within snap distance:
// a junction, channel head, outlet terminus, or lake connector.
type Node struct {
	ID        int
	Endpoints []int
	IsLake    bool
	LakeID    int
}

// Lake is a polygon contributing vertices to the lake spatial index. Only
// vertex coordinates are consumed (spec §6).
type Lake struct {
	ID       int
	Vertices [][2]float64
}

// Graph is the endpoint/link/node arena for one stream network, plus the
// spatial indexes used to build it. It is not safe for concurrent
// mutation; see package doc.
type Graph struct {
	Endpoints []Endpoint
	Links     []Link
	Nodes     []Node
	Lakes     []Lake

	// DistMult is the geographic-to-metric length conversion factor
	// (1 for projected grids); SnapRadiusSq is (snapDistance/DistMult)^2,
	// per spec §4.2.
	DistMult     float64
	SnapRadiusSq float64

	index     *spatial.Index // endpoint coordinates, payload = Endpoint.ID
	lakeIndex *spatial.Index // lake vertex coordinates, payload = Lake.ID

	lakeNodeOf map[int]int // Lake.ID -> Node.ID, first-touch assignment
}

// NewGraph returns an empty arena ready for AddPolyline calls.
// snapDistance is in world units; distMult is demgrid.Grid.DistMult()
// (1 for projected rasters).
func NewGraph(snapDistance, distMult float64) *Graph {
	radius := snapDistance / distMult

	return &Graph{
		DistMult:     distMult,
		SnapRadiusSq: radius * radius,
		index:        spatial.NewIndex(),
		lakeNodeOf:   make(map[int]int),
	}
}
