// Package demgrid provides a read-only, in-memory sampler over a digital
// elevation model raster: world-to-grid mapping, nodata classification,
// and edge-cell detection (a valid cell adjacent to nodata or the grid
// boundary).
//
// Grids in projected (planar) units report lengths directly in those
// units. Grids in geographic (lon/lat) units additionally expose a
// DistMult conversion factor derived from the WGS-84 ellipsoid at the
// grid's mid-latitude, for converting both snap radii and link lengths
// to an approximate metric scale.
package demgrid
