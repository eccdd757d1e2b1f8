// Command streamnet-demo runs the engine over a small in-memory Y-junction
// network: two headwaters joining a trunk that drains off the edge of the
// DEM.
//
// Scenario:
//
//	(0,0)           (5,10) trunk far end, on the DEM's top edge row
//	   \                |
//	    \ head1         | trunk
//	     \              |
//	   (5,5) ----------(5,5)
//	     /
//	    / head2
//	   /
//	(7,4)
//
// head1 is the longer headwater and becomes the mainstem.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/terrane-gis/streamnet"
	"github.com/terrane-gis/streamnet/demgrid"
)

// memStreams is an in-memory streamnet.PolylineReader.
type memStreams [][][][2]float64

func (s memStreams) ReadPolylines() ([][][][2]float64, error) { return s, nil }

func main() {
	data := make([]float64, 15*20)
	for i := range data {
		data[i] = 100
	}

	dem, err := demgrid.NewGrid(15, 20, -5, 10, 1, 1, -9999, demgrid.Projected, data)
	if err != nil {
		log.Fatalf("building DEM: %v", err)
	}

	streams := memStreams{
		{{{0, 0}, {5, 5}}},
		{{{7, 4}, {5, 5}}},
		{{{5, 5}, {5, 10}}},
	}

	eng := streamnet.New(streamnet.WithSnapDistance(1))

	links, nodes, err := eng.Run(context.Background(), streams, dem, nil)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	fmt.Println("links:")
	for _, l := range links {
		fmt.Printf("  FID=%d outlet=%d strahler=%d shreve=%.1f hack=%d mainstem=%d\n",
			l.FID, l.Outlet, l.Strahler, l.Shreve, l.Hack, l.Mainstem)
	}

	fmt.Println("nodes:")
	for _, n := range nodes {
		fmt.Printf("  FID=%d nodeID=%d type=%s\n", n.FID, n.NodeID, n.Type)
	}
}
