package demgrid

import "math"

// RowColFromXY maps a world coordinate to its containing (row, col).
// The result may lie outside [0,rows) x [0,cols); callers pass it to
// Value/IsEdgeCell, which treat out-of-bounds as nodata/off-grid.
//
// Complexity: O(1).
func (g *Grid) RowColFromXY(x, y float64) (row, col int) {
	col = int(math.Floor((x - g.originX) / g.cellWidth))
	row = int(math.Floor((g.originY - y) / g.cellHeight))

	return row, col
}

// inBounds reports whether (row,col) addresses a real cell.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Value returns the raster value at (row,col), or Nodata() when the cell
// is off-grid.
//
// Complexity: O(1).
func (g *Grid) Value(row, col int) float64 {
	if !g.inBounds(row, col) {
		return g.nodata
	}

	return g.data[row*g.cols+col]
}

// IsNodata reports whether v equals the grid's nodata sentinel.
func (g *Grid) IsNodata(v float64) bool {
	return v == g.nodata
}

// moore8 is the Moore neighborhood (dy,dx) offset table, eight
// directions surrounding a cell.
var moore8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// IsEdgeCell reports whether (row,col) holds non-nodata data AND at
// least one of its eight Moore neighbors is nodata or off-grid.
//
// Complexity: O(1).
func (g *Grid) IsEdgeCell(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	v := g.Value(row, col)
	if g.IsNodata(v) {
		return false
	}
	for _, off := range moore8 {
		nr, nc := row+off[0], col+off[1]
		if !g.inBounds(nr, nc) {
			return true
		}
		if g.IsNodata(g.Value(nr, nc)) {
			return true
		}
	}

	return false
}

// Bounds returns the world-coordinate extent of the grid: (minX, minY,
// maxX, maxY).
func (g *Grid) Bounds() (minX, minY, maxX, maxY float64) {
	minX = g.originX
	maxX = g.originX + float64(g.cols)*g.cellWidth
	maxY = g.originY
	minY = g.originY - float64(g.rows)*g.cellHeight

	return minX, minY, maxX, maxY
}

// DistMult returns the factor that converts a geographic (longitude/
// latitude degree) distance to an approximate metric distance at the
// grid's mid-latitude, using the WGS-84 ellipsoid. For a Projected grid
// it returns 1 (no conversion needed).
//
// distMult = (longDegDist + latDegDist) / 2, where longDegDist and
// latDegDist are the length in meters of one degree of longitude and
// latitude respectively at the mid-latitude of g.Bounds().
func (g *Grid) DistMult() float64 {
	if g.units == Projected {
		return 1
	}

	_, minY, _, maxY := g.Bounds()
	midLatDeg := (minY + maxY) / 2
	phi := midLatDeg * math.Pi / 180

	const a = wgs84SemiMajorAxis
	const b = wgs84SemiMinorAxis
	e2 := 1 - (b*b)/(a*a)
	sinPhi := math.Sin(phi)
	denom := 1 - e2*sinPhi*sinPhi

	latDegDist := (math.Pi / 180) * a * (1 - e2) / math.Pow(denom, 1.5)
	longDegDist := (math.Pi / 180) * a * math.Cos(phi) / math.Sqrt(denom)

	return (longDegDist + latDegDist) / 2
}
