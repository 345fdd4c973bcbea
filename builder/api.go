// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     validates it, runs cons in order, then assigns weights once.
//   - Constructors emit topology only; weights are never drawn twice.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors wrapped with method context.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/netsim/core"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST validate parameters before mutating g and
// MUST NOT assign weights.
type Constructor func(g *core.Graph, cfg builderConfig) error

// GenerationParams are the inputs of the random network generator.
type GenerationParams struct {
	NodeCount       int         `yaml:"nodes" toml:"nodes"`
	EdgeProbability float64     `yaml:"edge_probability" toml:"edge_probability"`
	NodeWeight      WeightRange `yaml:"node_weight" toml:"node_weight"`
	EdgeWeight      WeightRange `yaml:"edge_weight" toml:"edge_weight"`
}

// Validate checks every parameter and returns the first violation wrapped
// around ErrInvalidParameter.
func (p GenerationParams) Validate() error {
	if p.NodeCount < 0 {
		return fmt.Errorf("%s: n=%d < 0: %w", MethodRandomNetwork, p.NodeCount, ErrInvalidParameter)
	}
	if err := validateProbability(MethodRandomNetwork, p.EdgeProbability); err != nil {
		return err
	}
	if err := p.NodeWeight.Validate(); err != nil {
		return fmt.Errorf("%s: node weight: %w", MethodRandomNetwork, err)
	}
	if err := p.EdgeWeight.Validate(); err != nil {
		return fmt.Errorf("%s: edge weight: %w", MethodRandomNetwork, err)
	}

	return nil
}

// Generate builds one random network: G(n,p) sampling, isolate removal, then
// uniform weight assignment, all drawing from rng.
//
// rng may be nil only when nothing is random (p ∈ {0,1} and both ranges
// degenerate). The result may be empty; that is a valid outcome.
//
// Complexity: O(n²) Bernoulli trials + O(V+E) weight draws.
func Generate(params GenerationParams, rng *rand.Rand) (*core.Graph, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	bopts := []BuilderOption{withRanges(params.NodeWeight, params.EdgeWeight)}
	if rng != nil {
		bopts = append(bopts, WithRand(rng))
	}

	return BuildGraph(bopts, RandomNetwork(params.NodeCount, params.EdgeProbability))
}

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, applies all constructors in order and finally assigns weights:
// vertices by ID ascending, then edges by ID ascending.
//
// Errors:
//   - ErrInvalidParameter / ErrNeedRandSource from configuration or constructors.
//   - ErrConstructFailed for a nil constructor.
//
// All errors are wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if err := cfg.validate(methodBuildGraph); err != nil {
		return nil, err
	}

	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if err := assignWeights(g, cfg); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// assignWeights draws one weight per vertex and per edge in the documented order.
func assignWeights(g *core.Graph, cfg builderConfig) error {
	for _, id := range g.Vertices() {
		if err := g.SetVertexWeight(id, cfg.nodeWeight.Draw(cfg.rng)); err != nil {
			return fmt.Errorf("assign weights: %w: %w", ErrConstructFailed, err)
		}
	}
	for _, e := range g.Edges() {
		if err := g.SetEdgeWeight(e.From, e.To, cfg.edgeWeight.Draw(cfg.rng)); err != nil {
			return fmt.Errorf("assign weights: %w: %w", ErrConstructFailed, err)
		}
	}

	return nil
}

// validateProbability enforces p ∈ [0,1] (NaN rejected).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidParameter)
	}

	return nil
}

// validateMin enforces got ≥ min for size parameters.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrInvalidParameter)
	}

	return nil
}

// addEdge wraps core.AddEdge with method context.
func addEdge(method string, g *core.Graph, u, v int) error {
	if _, err := g.AddEdge(u, v, 0); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// addVertices inserts IDs 0..n-1 in ascending order.
func addVertices(method string, g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(i, 0); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w: %w", method, i, ErrConstructFailed, err)
		}
	}

	return nil
}
