// Package outlet implements §4.4's OutletDetector: for every Link that
// crosses a DEM edge, it picks one endpoint as the outlet seed and
// stages it in a min-z priority queue for the flood in package flow.
//
// Seed selection order (first rule that applies wins):
//
//  1. The endpoint whose DEM sample is nodata while the other is valid.
//  2. The endpoint that is a DEM edge cell while the other is valid and
//     not an edge cell.
//  3. The endpoint with the lower valid z; ties retain endpoint 1 (spec
//     §9 Open Question).
package outlet
