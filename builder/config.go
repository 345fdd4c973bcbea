// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil    (pure/deterministic unless seeded)
//   • nodeWeight = [0,0]
//   • edgeWeight = [1,1]
//
// With the defaults a path of k edges costs exactly k.

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng        *rand.Rand
	nodeWeight WeightRange
	edgeWeight WeightRange
}

var (
	defaultNodeWeight = WeightRange{Min: 0, Max: 0}
	defaultEdgeWeight = WeightRange{Min: 1, Max: 1}
)

// newBuilderConfig applies options in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nodeWeight: defaultNodeWeight,
		edgeWeight: defaultEdgeWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks both weight ranges and that an rng exists whenever a
// range has to be sampled.
func (c builderConfig) validate(method string) error {
	if err := c.nodeWeight.Validate(); err != nil {
		return fmt.Errorf("%s: node weight: %w", method, err)
	}
	if err := c.edgeWeight.Validate(); err != nil {
		return fmt.Errorf("%s: edge weight: %w", method, err)
	}
	if c.rng == nil && (!c.nodeWeight.Degenerate() || !c.edgeWeight.Degenerate()) {
		return fmt.Errorf("%s: weight sampling: %w: %w", method, ErrInvalidParameter, ErrNeedRandSource)
	}

	return nil
}
