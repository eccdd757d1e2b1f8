// Package flow implements §4.5's FlowOrientation: a priority-queue flood
// seeded by package outlet that orients every Link, assigns per-link
// outlet id, outlet-link id, distance-to-outlet, and downstream-node
// count, and records the outflow adjacency. It detects diffluences (a
// link with more than one downstream link) and joined heads (two
// catchments meeting at a node where neither link is an outlet seed).
//
// The flood is keyed by endpoint z and is stable on ties by insertion
// order (package outlet's Queue), which is what makes a link's outlet
// assignment deterministic: it is always the z-lowest reachable seed.
package flow
