// Package spatial implements a 2-D k-d tree for squared-Euclidean range
// queries over integer-tagged points.
//
// The tree is built incrementally (Insert) and queried read-only
// thereafter (NeighborsWithinRange). Unlike a batch-built, depth-balanced
// tree, insertion order determines shape; callers that care about worst-case
// depth should insert points in a pre-shuffled or spatially-scrambled order.
//
// Complexity:
//
//   - Insert:               O(log n) expected, O(n) worst case.
//   - NeighborsWithinRange: O(sqrt(n) + k) expected for a query returning k
//     points, O(n) worst case.
//   - Memory:               O(n).
package spatial
