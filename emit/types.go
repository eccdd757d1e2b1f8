package emit

// Node event type tags (spec §4.5, §6 Nodes output TYPE field).
const (
	NodeTypeOutlet     = "outlet"
	NodeTypeDiffluence = "diffluence"
	NodeTypeJoinedHead = "joined head"
)

// NodeEvent is one node classification accumulated during FlowOrientation,
// before sequential FID assignment.
type NodeEvent struct {
	NodeID int
	Type   string
}

// LinkRecord is one emitted link tuple (spec §6 Links output).
type LinkRecord struct {
	FID             int
	Outlet          int
	TUCL            float64
	MaxUpstreamDist float64
	DSNodes         int
	Dist2Mouth      float64
	Horton          int
	Strahler        int
	Shreve          float64
	Hack            int
	Mainstem        int
	TribID          int
	Discontinuous   int
}

// NodeRecord is one emitted node point (spec §6 Nodes output).
type NodeRecord struct {
	FID    int
	NodeID int
	Type   string
}
