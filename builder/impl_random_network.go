// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// impl_random_network.go - implementation of RandomNetwork(n, p).
//
// Canonical model:
//   - Erdős–Rényi G(n,p): each unordered pair {i,j}, i<j, is an edge
//     independently with probability p.
//   - Every isolated vertex is removed afterwards; survivors keep their IDs.
//
// Contract:
//   - n ≥ 0 (else ErrInvalidParameter). n == 0 yields an empty graph.
//   - 0 ≤ p ≤ 1 (else ErrInvalidParameter).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - p == 0 and p == 1 consume no randomness.
//
// Determinism:
//   - Stable vertex order: i asc. Stable trial order: i asc, j asc (j>i).
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// RandomNetwork returns a Constructor that samples G(n,p) over vertices
// 0..n-1 and drops isolates.
func RandomNetwork(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", MethodRandomNetwork, n, ErrInvalidParameter)
		}
		if err := validateProbability(MethodRandomNetwork, p); err != nil {
			return err
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: p=%g: %w: %w", MethodRandomNetwork, p, ErrInvalidParameter, ErrNeedRandSource)
		}

		if err := addVertices(MethodRandomNetwork, g, n); err != nil {
			return err
		}

		var (
			i, j    int
			include bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch {
				case stochastic:
					include = cfg.rng.Float64() < p
				default:
					include = p == MaxProbability
				}
				if !include {
					continue
				}
				if err := addEdge(MethodRandomNetwork, g, i, j); err != nil {
					return err
				}
			}
		}

		g.RemoveIsolates()

		return nil
	}
}
