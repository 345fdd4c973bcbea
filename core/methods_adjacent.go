// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries and adjacency snapshots.
// Determinism:
//   - Neighbor order is the insertion order of the incident edges.

package core

import "fmt"

// Neighbors returns the vertices adjacent to id, ordered by the insertion
// order of the connecting edges.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}

	return g.neighborsLocked(id), nil
}

func (g *Graph) neighborsLocked(id int) []int {
	bucket := g.adjacency[id]
	out := make([]int, len(bucket))
	for i, eid := range bucket {
		out[i] = g.edges[eid].Other(id)
	}

	return out
}

// AdjacencyList returns a snapshot vertex → neighbors for every vertex,
// including isolates (empty slices). The snapshot is independent of g, which
// lets traversals run without holding the graph lock.
//
// Complexity: O(V+E)
func (g *Graph) AdjacencyList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]int, len(g.vertices))
	for id := range g.vertices {
		out[id] = g.neighborsLocked(id)
	}

	return out
}
