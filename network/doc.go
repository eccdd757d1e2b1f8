// Package network builds and holds the implicit flow graph of a
// hydrographic stream network: an arena of Endpoints, Links (one per
// polyline part) and Nodes (spatial equivalence classes of endpoints),
// plus the DEM-aware construction pass that populates them.
//
// Entities are id-indexed slices, not pointer graphs — Nodes reference
// Endpoint ids and Endpoints reference a Node id, a cyclic reference
// that an integer arena sidesteps cleanly. The arena carries no
// internal mutex: construction and every later phase mutate it
// single-threaded and sequentially, by design (see package streamnet).
package network
