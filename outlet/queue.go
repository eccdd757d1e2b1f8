package outlet

import "container/heap"

// seedItem is one entry in the priority queue: an endpoint id keyed by
// its z value, with a monotone sequence number breaking ties in
// insertion order (spec §9: "the priority queue must be stable on z
// ties").
type seedItem struct {
	endpointID int
	z          float64
	seq        int
}

// seedHeap is a min-heap of *seedItem ordered by (z, seq) ascending,
// shaped directly on dijkstra.nodePQ's lazy-decrease-key pattern: new
// items are always pushed, never mutated in place.
type seedHeap []*seedItem

func (h seedHeap) Len() int { return len(h) }

func (h seedHeap) Less(i, j int) bool {
	if h[i].z != h[j].z {
		return h[i].z < h[j].z
	}

	return h[i].seq < h[j].seq
}

func (h seedHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *seedHeap) Push(x interface{}) { *h = append(*h, x.(*seedItem)) }

func (h *seedHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Queue is the min-z priority queue shared between OutletDetector seeding
// and FlowOrientation's flood.
type Queue struct {
	h   seedHeap
	seq int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push stages endpointID at the given z; the insertion order among equal
// z values is preserved.
func (q *Queue) Push(endpointID int, z float64) {
	heap.Push(&q.h, &seedItem{endpointID: endpointID, z: z, seq: q.seq})
	q.seq++
}

// Pop removes and returns the lowest-z (ties: earliest-inserted) endpoint
// id. ok is false if the queue is empty.
func (q *Queue) Pop() (endpointID int, z float64, ok bool) {
	if q.h.Len() == 0 {
		return 0, 0, false
	}
	item := heap.Pop(&q.h).(*seedItem)

	return item.endpointID, item.z, true
}

// Len reports the number of staged entries.
func (q *Queue) Len() int { return q.h.Len() }
