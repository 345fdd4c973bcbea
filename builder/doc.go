// Package builder generates weighted networks for the simulator.
//
// The central entry point is Generate, the random network generator: it
// samples a classical G(n,p) random graph over vertices 0..n-1, removes every
// isolated vertex (survivors keep their IDs), and then draws integer vertex
// and edge weights uniformly from inclusive ranges. All draws come from one
// caller-owned *rand.Rand, so a fixed seed reproduces the same network.
//
// Generate is a thin wrapper over the general composition API:
//
//   - BuildGraph(bopts, cons...) resolves BuilderOptions into an immutable
//     builderConfig, runs each Constructor in order, then assigns weights.
//   - Constructors: RandomNetwork(n,p), Path(n), Cycle(n), Star(n),
//     Complete(n), FromEdges(edges...). The deterministic ones serve as test
//     fixtures with known simple-path counts.
//   - Options: WithSeed, WithRand, WithNodeWeight(min,max), WithEdgeWeight(min,max).
//
// Weight assignment order (determinism):
//
//   - vertices by ID ascending, then edges by ID ascending (insertion order),
//     after all topology draws.
//
// RNG streams:
//
//   - NewRand(seed) builds a seeded source; seed 0 maps to a fixed default.
//   - DeriveRand(seed, stream) builds an independent stream per iteration via
//     SplitMix64 mixing, so parallel iterations stay reproducible.
//
// Errors:
//
//   - ErrInvalidParameter   negative n, p outside [0,1], min > max, overflowing range.
//   - ErrNeedRandSource     randomness required but no rng configured (also
//     matches ErrInvalidParameter).
//   - ErrConstructFailed    nil constructor or core mutation failure.
package builder
