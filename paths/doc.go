// Package paths enumerates every simple path between two vertices of a
// core.Graph.
//
// What:
//
//   - Enumerator: resumable iterator over the simple paths from a source to
//     a destination, driven by an explicit stack (no recursion).
//   - AllSimplePaths: collects one pair's paths.
//   - AllPairsPaths and Pairs: every ordered pair of vertices, source
//     ascending then destination ascending.
//
// A simple path repeats no vertex. Reaching the destination ends a path;
// the enumerator never walks through the destination to look for more.
// Pairs with equal endpoints, or with an endpoint missing from the graph,
// have no paths.
//
// Limits:
//
//   - WithContext(ctx)   cancellation, checked periodically.
//   - WithMaxPaths(k)    at most k paths; a (k+1)-th yields ErrPathBudgetExceeded.
//   - WithMaxHops(h)     drop paths longer than h edges.
//
// The number of simple paths grows factorially with density, so callers
// running on large or dense graphs should set a budget.
package paths
