package spatial

// Point is a 2-D coordinate in world units.
type Point [2]float64

// Neighbor is one result of a NeighborsWithinRange query: the payload
// originally passed to Insert, and its squared distance from the query
// point.
type Neighbor struct {
	Payload int
	DistSq  float64
}

// kdNode is one node of the tree: a point, its payload, and the two
// children split along Axis (0 = X, 1 = Y).
type kdNode struct {
	point   Point
	payload int
	axis    int
	left    *kdNode
	right   *kdNode
}

// Index is a 2-D k-d tree. The zero value is not usable; construct with
// NewIndex.
type Index struct {
	root *kdNode
	size int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Len reports the number of points inserted so far.
func (idx *Index) Len() int {
	return idx.size
}
