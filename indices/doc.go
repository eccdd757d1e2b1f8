// Package indices implements §4.6's IndexComputation: three topological
// passes over a FlowOrientation-oriented Graph computing TUCL,
// max-upstream-distance, tributary id, fractional Shreve order, Strahler
// order, mainstem flag, and Horton/Hack order.
//
// Compute must run after package flow has oriented the graph (every
// reachable Link has Outlet, OutletLinkID, and OutflowingLinks set).
// Mapped links with Outlet == -1 still receive TUCL, max-upstream-distance,
// tributary id, Shreve and Strahler order, but keep zero Horton and Hack
// order and are never flagged mainstem.
package indices
