// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with the given weight.
// If the vertex already exists this is a no-op and the stored weight is kept;
// use SetVertexWeight to change it.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id, weight)

	return nil
}

// addVertexLocked registers id if absent. Caller holds mu.
func (g *Graph) addVertexLocked(id int, weight int64) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Weight: weight}
	g.adjacency[id] = nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// VertexWeight returns the processing delay of vertex id.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) VertexWeight(id int) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("VertexWeight(%d): %w", id, ErrVertexNotFound)
	}

	return v.Weight, nil
}

// SetVertexWeight replaces the processing delay of vertex id.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) SetVertexWeight(id int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetVertexWeight(%d): %w", id, ErrVertexNotFound)
	}
	v.Weight = weight

	return nil
}

// RemoveVertex deletes vertex id and every incident edge.
// Surviving vertices keep their IDs.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
//
// Complexity: O(Σ deg(u)) over the neighbors u of id.
func (g *Graph) RemoveVertex(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("RemoveVertex(%d): %w", id, ErrVertexNotFound)
	}

	// Copy: removeEdgeLocked rewrites the bucket we iterate over.
	incident := append([]int(nil), g.adjacency[id]...)
	for _, eid := range incident {
		g.removeEdgeLocked(eid)
	}
	delete(g.adjacency, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedVertexIDsLocked()
}

func (g *Graph) sortedVertexIDsLocked() []int {
	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VerticesMap returns a copy of the vertex catalog keyed by ID.
// The returned Vertex values are copies; mutating them does not affect g.
func (g *Graph) VerticesMap() map[int]Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = *v
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(g.adjacency[id]), nil
}

// Isolates returns the IDs of all degree-zero vertices, ascending.
func (g *Graph) Isolates() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for _, id := range g.sortedVertexIDsLocked() {
		if len(g.adjacency[id]) == 0 {
			out = append(out, id)
		}
	}

	return out
}

// RemoveIsolates deletes every degree-zero vertex and reports how many were
// removed. IDs of the remaining vertices are unchanged.
func (g *Graph) RemoveIsolates() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := 0
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			delete(g.vertices, id)
			delete(g.adjacency, id)
			removed++
		}
	}

	return removed
}
