// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID so IDs stay monotonic on the clone.

package core

// Clone returns a deep copy of g: vertices, weights, edges, IDs and
// neighbor order are preserved.
//
// Complexity: O(V+E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithCapacity(len(g.vertices)))
	c.nextEdgeID = g.nextEdgeID
	for id, v := range g.vertices {
		c.vertices[id] = &Vertex{ID: v.ID, Weight: v.Weight}
		c.adjacency[id] = append([]int(nil), g.adjacency[id]...)
	}
	for eid, e := range g.edges {
		ce := *e
		c.edges[eid] = &ce
	}
	for k, eid := range g.pairs {
		c.pairs[k] = eid
	}

	return c
}

// Clear removes all vertices and edges and resets the edge ID counter.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nextEdgeID = 0
	g.vertices = make(map[int]*Vertex)
	g.edges = make(map[int]*Edge)
	g.pairs = make(map[pairKey]int)
	g.adjacency = make(map[int][]int)
}
