// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics facade.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int
	IsolateCount  int
	MaxDegree     int
	MinNodeWeight int64
	MaxNodeWeight int64
	MinEdgeWeight int64
	MaxEdgeWeight int64
}

// Stats returns counts, degree extrema and weight extrema of g.
// Weight extrema are zero when the corresponding catalog is empty.
//
// Complexity: O(V+E)
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
	}

	first := true
	for id, v := range g.vertices {
		deg := len(g.adjacency[id])
		if deg == 0 {
			s.IsolateCount++
		}
		if deg > s.MaxDegree {
			s.MaxDegree = deg
		}
		if first || v.Weight < s.MinNodeWeight {
			s.MinNodeWeight = v.Weight
		}
		if first || v.Weight > s.MaxNodeWeight {
			s.MaxNodeWeight = v.Weight
		}
		first = false
	}

	first = true
	for _, e := range g.edges {
		if first || e.Weight < s.MinEdgeWeight {
			s.MinEdgeWeight = e.Weight
		}
		if first || e.Weight > s.MaxEdgeWeight {
			s.MaxEdgeWeight = e.Weight
		}
		first = false
	}

	return &s
}
