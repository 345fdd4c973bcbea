// Package sim runs the network simulation: for each iteration it generates a
// random doubly weighted network, enumerates the simple paths of every
// ordered vertex pair, and records the cheapest path per pair.
//
// Iteration i draws all of its randomness from builder.DeriveRand(Seed, i),
// so a run is reproducible from its seed alone and independent of how many
// workers process it. Results are always reported in pair order (source
// ascending, then destination ascending) and iterations in index order.
//
// Work is spread over two ants pools: one runs whole iterations, the other
// runs per-pair enumerations. Pair tasks never wait on the pools, so the
// two levels cannot starve each other.
//
// Pairs whose endpoints sit in different connected components are skipped
// before enumeration. When a path budget is set, pairs with more simple
// paths than the budget are listed in Iteration.Truncated and produce no
// Result.
package sim
