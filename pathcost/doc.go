// Package pathcost prices paths through a doubly weighted network and picks
// the cheapest candidate.
//
// The cost of a path is the sum of the weights of every vertex on it
// (processing delay) plus the weights of every edge between consecutive
// vertices (transmission delay). A single-hop path [a, b] therefore costs
// w(a) + w(a,b) + w(b).
//
// SelectMinimum folds candidates with a strict less-than, so among equal
// costs the earliest candidate wins. Combined with the deterministic order
// of paths.Enumerator this makes the chosen path reproducible.
//
// Cheapest reaches the same minimum cost with Dijkstra instead of
// enumerating, provided no weight is negative.
//
// Errors:
//
//   - ErrInvalidPath    empty path, unknown vertex, missing edge or repeated vertex.
//   - ErrNoPathExists   no candidates, or Cheapest found no route.
//   - ErrCostOverflow   the sum does not fit in int64.
//   - ErrNegativeWeight Cheapest met a negative weight.
package pathcost
