// SPDX-License-Identifier: MIT
// Package: netsim/builder
//
// impl_fixtures.go - deterministic topologies: Path, Cycle, Star, Complete, FromEdges.
//
// Contract (all constructors):
//   - Vertices 0..n-1 are added in ascending order.
//   - Edges are emitted in a stable, documented order; neighbor order, and
//     therefore path enumeration order, follows it.
//   - Size violations return ErrInvalidParameter before any mutation.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netsim/core"
)

// Path returns a Constructor for the simple path 0-1-...-(n-1), n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := addVertices(MethodPath, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for C_n, n ≥ 3: the path 0…n-1 closed by {n-1,0}.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := addVertices(MethodCycle, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor for a star with hub StarCenterID and leaves 1..n-1, n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := addVertices(MethodStar, g, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodStar, g, StarCenterID, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n, n ≥ 1; edges in (i asc, j asc) order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(MethodComplete, g, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodComplete, g, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// FromEdges returns a Constructor that adds the listed edges in order,
// creating endpoints on demand. It is the fixture path for hand-written
// networks with arbitrary IDs.
//
// Errors:
//   - ErrInvalidParameter for self-loops or repeated pairs.
func FromEdges(edges ...[2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		seen := make(map[[2]int]struct{}, len(edges))
		for i, e := range edges {
			u, v := e[0], e[1]
			if u > v {
				u, v = v, u
			}
			if u == v {
				return fmt.Errorf("%s: edge %d (%d,%d) is a loop: %w", MethodFromEdges, i, e[0], e[1], ErrInvalidParameter)
			}
			if _, dup := seen[[2]int{u, v}]; dup {
				return fmt.Errorf("%s: edge %d (%d,%d) repeated: %w", MethodFromEdges, i, e[0], e[1], ErrInvalidParameter)
			}
			seen[[2]int{u, v}] = struct{}{}
		}
		for _, e := range edges {
			if err := addEdge(MethodFromEdges, g, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
