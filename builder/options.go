// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors PANIC on meaningless inputs (nil rng). Range checks
//     are deferred to BuildGraph so they surface as ErrInvalidParameter.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before graph construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The generator consumes it; do not share
// it across goroutines. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded via NewRand(seed).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = NewRand(seed)
	}
}

// WithNodeWeight sets the inclusive range for vertex processing delays.
func WithNodeWeight(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		c.nodeWeight = WeightRange{Min: min, Max: max}
	}
}

// WithEdgeWeight sets the inclusive range for edge transmission delays.
func WithEdgeWeight(min, max int64) BuilderOption {
	return func(c *builderConfig) {
		c.edgeWeight = WeightRange{Min: min, Max: max}
	}
}

// withRanges passes both ranges verbatim; BuildGraph validates them.
func withRanges(node, edge WeightRange) BuilderOption {
	return func(c *builderConfig) {
		c.nodeWeight = node
		c.edgeWeight = edge
	}
}
