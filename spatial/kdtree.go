package spatial

// Insert adds point with the given payload to the index.
//
// Complexity: O(log n) expected, O(n) worst case (degenerate insertion
// order).
func (idx *Index) Insert(point Point, payload int) {
	idx.root = insert(idx.root, point, payload, 0)
	idx.size++
}

func insert(n *kdNode, point Point, payload int, depth int) *kdNode {
	if n == nil {
		return &kdNode{point: point, payload: payload, axis: depth % 2}
	}
	if point[n.axis] < n.point[n.axis] {
		n.left = insert(n.left, point, payload, depth+1)
	} else {
		n.right = insert(n.right, point, payload, depth+1)
	}

	return n
}

// NeighborsWithinRange returns every inserted point whose squared distance
// to point is <= radiusSq, along with that squared distance. Result order
// is unspecified but deterministic for a given sequence of Insert calls.
//
// Complexity: O(sqrt(n) + k) expected for k results, O(n) worst case.
func (idx *Index) NeighborsWithinRange(point Point, radiusSq float64) []Neighbor {
	var out []Neighbor
	collectWithinRange(idx.root, point, radiusSq, &out)

	return out
}

func collectWithinRange(n *kdNode, point Point, radiusSq float64, out *[]Neighbor) {
	if n == nil {
		return
	}

	d := sqDist(n.point, point)
	if d <= radiusSq {
		*out = append(*out, Neighbor{Payload: n.payload, DistSq: d})
	}

	// Descend into the side containing the query point first; the other
	// side only needs visiting if the splitting plane itself is within
	// range, same prune rule as nearest-neighbor descent.
	diff := point[n.axis] - n.point[n.axis]
	near, far := n.left, n.right
	if diff >= 0 {
		near, far = n.right, n.left
	}

	collectWithinRange(near, point, radiusSq, out)
	if diff*diff <= radiusSq {
		collectWithinRange(far, point, radiusSq, out)
	}
}

func sqDist(a, b Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]

	return dx*dx + dy*dy
}
